package hd

import (
	"strconv"
	"strings"
)

// PathComponent is one step of a derivation path: either the starting node
// itself (m or M) or a child index.
type PathComponent struct {
	Self  bool
	Index int64
}

// Path is a parsed derivation path such as m/0'/1/2p/2.pub
type Path struct {
	Components  []PathComponent
	ForcePublic bool // strip the private key from the resolved node
}

const publicSuffix = ".pub"

// ParsePath parses a '/'-separated path. Components ending in p or ' are
// hardened (index | 0x80000000), bare indexes are normal (index & 0x7fffffff)
// and negative indexes are kept as given. A leading M or a trailing .pub
// makes the result public.
func ParsePath(path string) (Path, error) {
	var p Path
	if strings.HasSuffix(path, publicSuffix) {
		p.ForcePublic = true
		path = strings.TrimSuffix(path, publicSuffix)
	}
	for i, part := range strings.Split(path, "/") {
		if part == "m" || part == "M" {
			if i != 0 {
				return Path{}, NewErr(InvalidPath, "%q may only start a path", part)
			}
			if part == "M" {
				p.ForcePublic = true
			}
			p.Components = append(p.Components, PathComponent{Self: true})
			continue
		}
		index, err := parseIndex(part)
		if err != nil {
			return Path{}, err
		}
		p.Components = append(p.Components, PathComponent{Index: index})
	}
	return p, nil
}

func parseIndex(part string) (int64, error) {
	num := part
	hardened := strings.HasSuffix(part, "p") || strings.HasSuffix(part, "'")
	if hardened {
		num = part[:len(part)-1]
	}
	i, err := strconv.ParseInt(num, 10, 64)
	if err != nil {
		return 0, NewErr(InvalidPath, "%q is not a path index", part)
	}
	switch {
	case i < 0:
		if i < minChildIndex {
			return 0, NewErr(InvalidPath, "%q is out of range", part)
		}
		return i, nil
	case i > maxChildIndex:
		return 0, NewErr(InvalidPath, "%q is out of range", part)
	case hardened:
		return i | HardenedKeyStart, nil
	default:
		return i & (HardenedKeyStart - 1), nil
	}
}

func (p Path) String() string {
	parts := make([]string, 0, len(p.Components))
	for _, c := range p.Components {
		switch {
		case c.Self && p.ForcePublic:
			parts = append(parts, "M")
		case c.Self:
			parts = append(parts, "m")
		case c.Index >= HardenedKeyStart:
			parts = append(parts, strconv.FormatInt(c.Index-HardenedKeyStart, 10)+"'")
		default:
			parts = append(parts, strconv.FormatInt(c.Index, 10))
		}
	}
	s := strings.Join(parts, "/")
	if p.ForcePublic && (len(p.Components) == 0 || !p.Components[0].Self) {
		s += publicSuffix
	}
	return s
}

// DerivePath resolves path relative to n.
func (n *Node) DerivePath(path string) (*Node, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	return n.DerivePathComponents(p)
}

func (n *Node) DerivePathComponents(p Path) (*Node, error) {
	node := n
	for _, c := range p.Components {
		if c.Self {
			continue
		}
		child, err := node.Child(c.Index)
		if err != nil {
			return nil, err
		}
		node = child
	}
	if p.ForcePublic {
		node = node.PublicOnly()
	}
	return node, nil
}
