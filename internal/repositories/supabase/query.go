package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// QueryBuilder assembles a single PostgREST request against one table. The
// terminal Execute call returns either the affected/selected rows or an
// *Error; routers never inspect response internals themselves.
type QueryBuilder struct {
	client    *Client
	table     string
	method    string
	body      interface{}
	params    url.Values
	single    bool
	returning bool
}

func (c *Client) From(table string) *QueryBuilder {
	return &QueryBuilder{
		client: c,
		table:  table,
		method: http.MethodGet,
		params: url.Values{},
	}
}

// Select sets the requested columns, including PostgREST embedded resources
// such as "*, members:group_members(user_id)".
func (q *QueryBuilder) Select(columns string) *QueryBuilder {
	q.params.Set("select", columns)
	return q
}

func (q *QueryBuilder) Insert(rows ...map[string]interface{}) *QueryBuilder {
	q.method = http.MethodPost
	q.body = rows
	return q
}

func (q *QueryBuilder) Update(values map[string]interface{}) *QueryBuilder {
	q.method = http.MethodPatch
	q.body = values
	return q
}

func (q *QueryBuilder) Delete() *QueryBuilder {
	q.method = http.MethodDelete
	return q
}

func (q *QueryBuilder) Eq(column, value string) *QueryBuilder {
	q.params.Add(column, "eq."+value)
	return q
}

func (q *QueryBuilder) Lt(column, value string) *QueryBuilder {
	q.params.Add(column, "lt."+value)
	return q
}

func (q *QueryBuilder) In(column string, values []string) *QueryBuilder {
	q.params.Add(column, fmt.Sprintf("in.(%s)", strings.Join(values, ",")))
	return q
}

// Or applies a raw PostgREST or-filter, e.g.
// "privacy.eq.public,id.in.(a,b)".
func (q *QueryBuilder) Or(filter string) *QueryBuilder {
	q.params.Set("or", "("+filter+")")
	return q
}

func (q *QueryBuilder) Match(conditions map[string]string) *QueryBuilder {
	for column, value := range conditions {
		q.Eq(column, value)
	}
	return q
}

func (q *QueryBuilder) Order(column string) *QueryBuilder {
	q.params.Set("order", column)
	return q
}

// Single asks PostgREST for exactly one row; zero or multiple rows become an
// upstream error.
func (q *QueryBuilder) Single() *QueryBuilder {
	q.single = true
	return q
}

// Returning requests the mutated rows back, so callers can detect a
// zero-row mutation.
func (q *QueryBuilder) Returning() *QueryBuilder {
	q.returning = true
	return q
}

func (q *QueryBuilder) Execute(ctx context.Context) ([]map[string]interface{}, error) {
	req := q.client.rest.R().
		SetContext(ctx).
		SetQueryParamsFromValues(q.params)

	if q.body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(q.body)
	}
	if q.returning {
		req.SetHeader("Prefer", "return=representation")
	}
	if q.single {
		req.SetHeader("Accept", "application/vnd.pgrst.object+json")
	}

	resp, err := req.Execute(q.method, "/rest/v1/"+q.table)
	if err != nil {
		return nil, &Error{Message: err.Error()}
	}
	if resp.IsError() {
		return nil, upstreamError(resp)
	}

	return decodeRows(resp.Body(), q.single)
}

func decodeRows(body []byte, single bool) ([]map[string]interface{}, error) {
	if len(body) == 0 {
		return nil, nil
	}

	if single {
		var row map[string]interface{}
		if err := json.Unmarshal(body, &row); err != nil {
			return nil, &Error{Message: fmt.Sprintf("failed to decode backend response: %v", err)}
		}
		return []map[string]interface{}{row}, nil
	}

	var rows []map[string]interface{}
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, &Error{Message: fmt.Sprintf("failed to decode backend response: %v", err)}
	}
	return rows, nil
}

// RPC invokes a named backend procedure, e.g. accept_group_invite. The
// procedure runs atomically on the backend side.
func (c *Client) RPC(ctx context.Context, name string, params map[string]interface{}) (json.RawMessage, error) {
	resp, err := c.rest.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(params).
		Post("/rest/v1/rpc/" + name)
	if err != nil {
		return nil, &Error{Message: err.Error()}
	}
	if resp.IsError() {
		return nil, upstreamError(resp)
	}

	return json.RawMessage(resp.Body()), nil
}
