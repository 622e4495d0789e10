package gmp

import (
	"bytes"
	"encoding/xml"
	"strconv"
	"strings"

	perr "gsa/internal/platform/errors"
)

// node is a generic element tree; responses vary per command so decoding
// walks the tree instead of binding one struct per entity type
type node struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
	Text    string     `xml:",chardata"`
	Nodes   []node     `xml:",any"`
}

func (n *node) attr(name string) string {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

func (n *node) child(name string) *node {
	for i := range n.Nodes {
		if n.Nodes[i].XMLName.Local == name {
			return &n.Nodes[i]
		}
	}
	return nil
}

func (n *node) childText(name string) string {
	if c := n.child(name); c != nil {
		return strings.TrimSpace(c.Text)
	}
	return ""
}

func (n *node) intAttr(name string) int {
	v, _ := strconv.Atoi(strings.TrimSpace(n.attr(name)))
	return v
}

// find returns the first element, depth first, whose name satisfies match
func (n *node) find(match func(string) bool) *node {
	if match(n.XMLName.Local) {
		return n
	}
	for i := range n.Nodes {
		if hit := n.Nodes[i].find(match); hit != nil {
			return hit
		}
	}
	return nil
}

// decodeResponse parses data and returns the <cmd>_response element, either
// bare or wrapped in the gsad envelope. A non 2xx protocol status is an error
func decodeResponse(cmd string, data []byte) (*node, error) {
	var root node
	if err := xml.NewDecoder(bytes.NewReader(data)).Decode(&root); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUpstream, "gmp %s: malformed xml", cmd)
	}
	want := cmd + "_response"
	resp := root.find(func(s string) bool { return s == want })
	if resp == nil {
		resp = root.find(func(s string) bool { return strings.HasSuffix(s, "_response") })
	}
	if resp == nil {
		return nil, perr.Upstreamf("gmp %s: no response element", cmd)
	}
	status := resp.intAttr("status")
	if status < 200 || status > 299 {
		return resp, statusError(cmd, status, resp.attr("status_text"))
	}
	return resp, nil
}
