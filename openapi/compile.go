package openapi

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	camara "github.com/camara-go/camara"
	"github.com/camara-go/camara/dsl"
)

// Keywords compiled into the schema, or harmless annotations.
var knownKeywords = map[string]struct{}{
	"$ref": {}, "type": {}, "properties": {}, "required": {}, "nullable": {},
	"enum": {}, "items": {}, "additionalProperties": {}, "format": {},
	"oneOf": {}, "anyOf": {}, "allOf": {}, "discriminator": {},
	"minimum": {}, "maximum": {}, "minLength": {}, "maxLength": {},
	"pattern": {}, "minItems": {}, "maxItems": {},
	"title": {}, "description": {}, "example": {}, "examples": {},
	"default": {}, "readOnly": {}, "writeOnly": {}, "deprecated": {},
	"externalDocs": {}, "xml": {},
}

// maxAllOfDepth bounds $ref chains followed while merging allOf parts.
const maxAllOfDepth = 32

type compiler struct {
	components map[string]any
	opts       Options
	d          *simpleDiag
	reg        *camara.Registry
	formats    map[string]struct{}
}

func (c *compiler) compile(path string, node map[string]any) (dsl.AnyAdapter, error) {
	c.warnUnknownKeywords(path, node)
	ad, err := c.compileNode(path, node)
	if err != nil {
		return dsl.AnyAdapter{}, err
	}
	if b, _ := node["nullable"].(bool); b {
		ad = ad.Nullable()
	}
	return ad, nil
}

func (c *compiler) compileNode(path string, node map[string]any) (dsl.AnyAdapter, error) {
	if ref, ok := node["$ref"].(string); ok {
		return c.ref(path, ref), nil
	}
	if parts, ok := node["allOf"].([]any); ok {
		merged, err := c.mergeAllOf(path, node, parts)
		if err != nil {
			return dsl.AnyAdapter{}, err
		}
		return c.object(path, merged)
	}
	if branches, ok := node["oneOf"].([]any); ok {
		return c.union(path, node, branches)
	}
	if branches, ok := node["anyOf"].([]any); ok {
		return c.union(path, node, branches)
	}
	if disc, ok := node["discriminator"].(map[string]any); ok {
		if branches := mappingBranches(disc); len(branches) > 0 {
			return c.union(path, node, branches)
		}
	}

	t, _ := node["type"].(string)
	if t == "" {
		switch {
		case node["properties"] != nil || node["additionalProperties"] != nil:
			t = "object"
		case node["items"] != nil:
			t = "array"
		case node["enum"] != nil:
			t = "string"
		}
	}
	switch t {
	case "string":
		return c.str(path, node), nil
	case "integer":
		s := dsl.Int()
		if f, ok := number(node["minimum"]); ok {
			s = s.Min(int64(math.Ceil(f)))
		}
		if f, ok := number(node["maximum"]); ok {
			s = s.Max(int64(math.Floor(f)))
		}
		return dsl.Adapt[int64](s), nil
	case "number":
		s := dsl.Float()
		if f, ok := number(node["minimum"]); ok {
			s = s.Min(f)
		}
		if f, ok := number(node["maximum"]); ok {
			s = s.Max(f)
		}
		return dsl.Adapt[float64](s), nil
	case "boolean":
		return dsl.Adapt(dsl.Bool()), nil
	case "array":
		return c.array(path, node)
	case "object":
		return c.object(path, node)
	case "":
		return dsl.Adapt(dsl.Any()), nil
	default:
		c.d.warnf("%s: unknown type %q treated as any", path, t)
		return dsl.Adapt(dsl.Any()), nil
	}
}

func (c *compiler) warnUnknownKeywords(path string, node map[string]any) {
	var unknown []string
	for k := range node {
		if _, ok := knownKeywords[k]; ok || strings.HasPrefix(k, "x-") {
			continue
		}
		unknown = append(unknown, k)
	}
	sort.Strings(unknown)
	for _, k := range unknown {
		c.d.warnf("%s: keyword %q ignored", path, k)
	}
}

func (c *compiler) ref(path, ref string) dsl.AnyAdapter {
	name, ok := strings.CutPrefix(ref, componentPrefix)
	if !ok {
		c.d.warnf("%s: $ref %q not supported (local components only)", path, ref)
		return dsl.Adapt(dsl.Any())
	}
	if _, ok := c.components[name].(map[string]any); !ok {
		c.d.warnf("%s: $ref to unknown component %q treated as any", path, name)
		return dsl.Adapt(dsl.Any())
	}
	return dsl.Adapt(dsl.Ref[any](c.reg, name))
}

func (c *compiler) str(path string, node map[string]any) dsl.AnyAdapter {
	if raw, ok := node["enum"].([]any); ok {
		members := make([]string, 0, len(raw))
		for _, m := range raw {
			switch v := m.(type) {
			case string:
				members = append(members, v)
			case nil:
				// null members come with nullable: true
			default:
				c.d.warnf("%s: non-string enum member %v ignored", path, m)
			}
		}
		e := dsl.Enum(members...)
		if c.opts.LenientEnums {
			e = e.Lenient()
		}
		return dsl.Adapt[string](e)
	}
	switch f, _ := node["format"].(string); f {
	case "date-time":
		return dsl.Adapt(dsl.DateTime())
	case "uuid":
		return dsl.Adapt(dsl.UUID())
	case "":
	default:
		if c.formats == nil {
			c.formats = map[string]struct{}{}
		}
		if _, seen := c.formats[f]; !seen {
			c.formats[f] = struct{}{}
			c.d.warnf("%s: format %q is not checked", path, f)
		}
	}
	s := dsl.String()
	if n, ok := number(node["minLength"]); ok {
		s = s.MinLen(int(n))
	}
	if n, ok := number(node["maxLength"]); ok {
		s = s.MaxLen(int(n))
	}
	if p, ok := node["pattern"].(string); ok {
		if _, err := regexp.Compile(p); err != nil {
			c.d.warnf("%s: pattern %q is not supported: %v", path, p, err)
		} else {
			s = s.Pattern(p)
		}
	}
	return dsl.Adapt[string](s)
}

func (c *compiler) array(path string, node map[string]any) (dsl.AnyAdapter, error) {
	elem := dsl.Adapt(dsl.Any())
	if items, ok := node["items"].(map[string]any); ok {
		var err error
		if elem, err = c.compile(path+"/items", items); err != nil {
			return dsl.AnyAdapter{}, err
		}
	} else {
		c.d.warnf("%s: array without items treated as a list of any", path)
	}
	l := dsl.List[any](elem)
	if n, ok := number(node["minItems"]); ok {
		l = l.Min(int(n))
	}
	if n, ok := number(node["maxItems"]); ok {
		l = l.Max(int(n))
	}
	return dsl.Adapt[[]any](l), nil
}

func (c *compiler) object(path string, node map[string]any) (dsl.AnyAdapter, error) {
	props, _ := node["properties"].(map[string]any)
	ap := node["additionalProperties"]
	if len(props) == 0 {
		if apNode, ok := ap.(map[string]any); ok {
			elem, err := c.compile(path+"/additionalProperties", apNode)
			if err != nil {
				return dsl.AnyAdapter{}, err
			}
			return dsl.MapOf(elem), nil
		}
	}

	b := dsl.Object().Title(titleFor(path, node)).Unknown(c.opts.Unknown.policy())
	switch v := ap.(type) {
	case bool:
		if v {
			b.UnknownPassthrough()
		} else {
			b.UnknownStrict()
		}
	case map[string]any:
		c.d.warnf("%s: additionalProperties schema next to properties; extra keys are kept unchecked", path)
		b.UnknownPassthrough()
	}

	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		pn, ok := props[k].(map[string]any)
		if !ok {
			c.d.warnf("%s: property %q is not a schema object", path, k)
			continue
		}
		ad, err := c.compile(path+"/properties/"+k, pn)
		if err != nil {
			return dsl.AnyAdapter{}, err
		}
		b.Field(k, ad)
	}
	for _, r := range requiredNames(node) {
		if _, ok := props[r].(map[string]any); !ok {
			c.d.warnf("%s: required property %q is not declared", path, r)
			continue
		}
		b.Require(r)
	}
	s, err := b.Build()
	if err != nil {
		return dsl.AnyAdapter{}, err
	}
	return dsl.Adapt(s), nil
}

func (c *compiler) union(path string, node map[string]any, branches []any) (dsl.AnyAdapter, error) {
	u := dsl.Union[any](titleFor(path, node))
	disc, _ := node["discriminator"].(map[string]any)
	prop, _ := disc["propertyName"].(string)
	if prop != "" {
		u.Discriminator(prop)
	}
	tagByRef := map[string]string{}
	if mapping, ok := disc["mapping"].(map[string]any); ok {
		for tag, target := range mapping {
			if ts, ok := target.(string); ok {
				tagByRef[refTarget(ts)] = tag
			}
		}
	}

	vs := make([]dsl.Variant[any], 0, len(branches))
	for i, raw := range branches {
		bn, ok := raw.(map[string]any)
		if !ok {
			c.d.warnf("%s: branch %d is not a schema object", path, i)
			continue
		}
		ad, err := c.compile(path+"/oneOf/"+strconv.Itoa(i), bn)
		if err != nil {
			return dsl.AnyAdapter{}, err
		}
		label := strconv.Itoa(i)
		if ref, ok := bn["$ref"].(string); ok {
			label = strings.TrimPrefix(ref, componentPrefix)
			if tag, ok := tagByRef[ref]; ok {
				label = tag
			}
		}
		vs = append(vs, dsl.Case[any](label, ad))
	}
	s, err := u.Variant(vs...).Build()
	if err != nil {
		return dsl.AnyAdapter{}, err
	}
	return dsl.Adapt(s), nil
}

// mergeAllOf flattens allOf parts, following $refs, into one object node.
// Properties of later parts win; required lists accumulate.
func (c *compiler) mergeAllOf(path string, node map[string]any, parts []any) (map[string]any, error) {
	props := map[string]any{}
	var req []any
	merged := map[string]any{"type": "object"}
	if t, ok := node["title"]; ok {
		merged["title"] = t
	}

	var add func(p map[string]any, depth int) error
	add = func(p map[string]any, depth int) error {
		if depth > maxAllOfDepth {
			return fmt.Errorf("%s: allOf nesting deeper than %d", path, maxAllOfDepth)
		}
		if ref, ok := p["$ref"].(string); ok {
			target, ok := c.components[strings.TrimPrefix(ref, componentPrefix)].(map[string]any)
			if !ok || !strings.HasPrefix(ref, componentPrefix) {
				c.d.warnf("%s: allOf $ref %q not resolved", path, ref)
				return nil
			}
			return add(target, depth+1)
		}
		if sub, ok := p["allOf"].([]any); ok {
			for _, s := range sub {
				if sm, ok := s.(map[string]any); ok {
					if err := add(sm, depth+1); err != nil {
						return err
					}
				}
			}
		}
		if pm, ok := p["properties"].(map[string]any); ok {
			for k, v := range pm {
				props[k] = v
			}
		}
		if rq, ok := p["required"].([]any); ok {
			req = append(req, rq...)
		}
		if ap, ok := p["additionalProperties"]; ok {
			merged["additionalProperties"] = ap
		}
		return nil
	}
	for _, part := range parts {
		pm, ok := part.(map[string]any)
		if !ok {
			c.d.warnf("%s: allOf part is not a schema object", path)
			continue
		}
		if err := add(pm, 0); err != nil {
			return nil, err
		}
	}
	own := map[string]any{}
	for _, k := range []string{"properties", "required", "additionalProperties"} {
		if v, ok := node[k]; ok {
			own[k] = v
		}
	}
	if err := add(own, 0); err != nil {
		return nil, err
	}
	merged["properties"] = props
	merged["required"] = req
	return merged, nil
}

// mappingBranches turns a discriminator mapping into $ref branches, ordered
// by tag.
func mappingBranches(disc map[string]any) []any {
	mapping, _ := disc["mapping"].(map[string]any)
	tags := make([]string, 0, len(mapping))
	for tag := range mapping {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	out := make([]any, 0, len(tags))
	for _, tag := range tags {
		if target, ok := mapping[tag].(string); ok {
			out = append(out, map[string]any{"$ref": refTarget(target)})
		}
	}
	return out
}

// refTarget accepts both full references and bare component names.
func refTarget(s string) string {
	if strings.HasPrefix(s, "#") {
		return s
	}
	return componentPrefix + s
}

func titleFor(path string, node map[string]any) string {
	if t, ok := node["title"].(string); ok && t != "" {
		return t
	}
	if !strings.Contains(path, "/") {
		return path
	}
	return ""
}

func requiredNames(node map[string]any) []string {
	raw, _ := node["required"].([]any)
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		s, ok := r.(string)
		if !ok {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
