package gmp

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"gsa/internal/core/filter"
	perr "gsa/internal/platform/errors"
)

// Entity is the common projection of any listed entity
type Entity struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Comment  string `json:"comment,omitempty"`
	Owner    string `json:"owner,omitempty"`
	Modified string `json:"modification_time,omitempty"`
	InUse    bool   `json:"in_use,omitempty"`
	Writable bool   `json:"writable,omitempty"`
}

// Counts mirrors the <type>_count and <types start max> elements
type Counts struct {
	First    int `json:"first"`
	Rows     int `json:"rows"`
	Length   int `json:"length"`
	Filtered int `json:"filtered"`
	All      int `json:"all"`
}

// EntityPage is one page of a get_<type>s answer
type EntityPage struct {
	Items  []Entity       `json:"items"`
	Counts Counts         `json:"counts"`
	Filter *filter.Filter `json:"-"`
	Meta   Meta           `json:"meta"`
}

// GetEntities lists entities of entityType (singular, e.g. "task") through f.
// A saved filter is referenced by id, otherwise the simplified filter string
// is sent. The backend's normalized filter comes back on the page
func (c *Client) GetEntities(ctx context.Context, entityType string, f *filter.Filter) (EntityPage, error) {
	entityType = strings.TrimSpace(entityType)
	if entityType == "" {
		return EntityPage{}, perr.InvalidArgf("entity type is required")
	}
	if f == nil {
		f = filter.New()
	}

	cmd := "get_" + entityType + "s"
	args := url.Values{"cmd": {cmd}}
	if id := f.ID(); id != "" {
		args.Set("filter_id", id)
	} else {
		args.Set("filter", f.Simple().FilterString())
	}

	resp, err := c.Request(ctx, http.MethodGet, args)
	if err != nil {
		return EntityPage{Meta: resp.Meta}, err
	}
	page, err := decodeEntities(cmd, entityType, resp.Data)
	page.Meta = resp.Meta
	if err != nil {
		return page, err
	}
	if page.Filter == nil {
		page.Filter = f.Copy()
	}
	return page, nil
}

func decodeEntities(cmd, entityType string, data []byte) (EntityPage, error) {
	resp, err := decodeResponse(cmd, data)
	if err != nil {
		return EntityPage{}, err
	}

	page := EntityPage{Items: []Entity{}}
	for i := range resp.Nodes {
		n := &resp.Nodes[i]
		if n.XMLName.Local != entityType || n.attr("id") == "" {
			continue
		}
		page.Items = append(page.Items, Entity{
			ID:       n.attr("id"),
			Name:     n.childText("name"),
			Comment:  n.childText("comment"),
			Owner:    ownerName(n),
			Modified: n.childText("modification_time"),
			InUse:    n.childText("in_use") == "1",
			Writable: n.childText("writable") == "1",
		})
	}

	if fl := resp.child("filters"); fl != nil {
		pf := filter.Parse(fl.childText("term"))
		if id := fl.attr("id"); id != "" {
			pf, _ = pf.WithID(id)
		}
		page.Filter = pf
	}

	if win := resp.child(entityType + "s"); win != nil {
		page.Counts.First = win.intAttr("start")
		page.Counts.Rows = win.intAttr("max")
	}
	if cnt := resp.child(entityType + "_count"); cnt != nil {
		page.Counts.All = atoi(cnt.Text)
		page.Counts.Filtered = atoi(cnt.childText("filtered"))
		page.Counts.Length = atoi(cnt.childText("page"))
	}
	if page.Counts.Length == 0 {
		page.Counts.Length = len(page.Items)
	}
	return page, nil
}

func ownerName(n *node) string {
	if o := n.child("owner"); o != nil {
		return o.childText("name")
	}
	return ""
}

func atoi(s string) int {
	v, _ := strconv.Atoi(strings.TrimSpace(s))
	return v
}
