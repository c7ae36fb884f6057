package controllers

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// maxFormIndex is the largest bracket index still read as an array slot.
// Larger indices keep the object form.
const maxFormIndex = 20

// formFields turns urlencoded values into nested fields. Bracket keys build
// objects (a[b]=c) and arrays (a[]=x, a[0]=x). Plain keys stay flat, and a
// repeated key collects its values into an array.
func formFields(form url.Values) map[string]interface{} {
	keys := make([]string, 0, len(form))
	for key := range form {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	root := map[string]interface{}{}
	for _, key := range keys {
		path := formPath(key)
		for _, value := range form[key] {
			if !setFormValue(root, path, value) {
				setFormValue(root, []string{key}, value)
			}
		}
	}
	for key, child := range root {
		root[key] = compactForm(child)
	}
	return root
}

// formPath splits "a[b][]" into ["a", "b", ""]. A key with unbalanced
// brackets is returned whole.
func formPath(key string) []string {
	open := strings.IndexByte(key, '[')
	if open <= 0 {
		return []string{key}
	}
	path := []string{key[:open]}
	rest := key[open:]
	for rest != "" {
		if rest[0] != '[' {
			return []string{key}
		}
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return []string{key}
		}
		path = append(path, rest[1:end])
		rest = rest[end+1:]
	}
	return path
}

func setFormValue(node map[string]interface{}, path []string, value string) bool {
	for i, segment := range path {
		if segment == "" {
			segment = strconv.Itoa(len(node))
		}
		if i == len(path)-1 {
			switch existing := node[segment].(type) {
			case nil:
				node[segment] = value
			case string:
				node[segment] = []interface{}{existing, value}
			case []interface{}:
				node[segment] = append(existing, value)
			default:
				return false
			}
			return true
		}
		child, exists := node[segment]
		if !exists {
			next := map[string]interface{}{}
			node[segment] = next
			node = next
			continue
		}
		next, ok := child.(map[string]interface{})
		if !ok {
			return false
		}
		node = next
	}
	return true
}

// compactForm turns objects whose keys are all small indices into arrays,
// ordered by index with gaps closed.
func compactForm(v interface{}) interface{} {
	node, ok := v.(map[string]interface{})
	if !ok {
		return v
	}
	for key, child := range node {
		node[key] = compactForm(child)
	}

	indices := make([]int, 0, len(node))
	for key := range node {
		n, err := strconv.Atoi(key)
		if err != nil || n < 0 || n > maxFormIndex || strconv.Itoa(n) != key {
			return node
		}
		indices = append(indices, n)
	}
	if len(indices) == 0 {
		return node
	}
	sort.Ints(indices)
	items := make([]interface{}, 0, len(indices))
	for _, n := range indices {
		items = append(items, node[strconv.Itoa(n)])
	}
	return items
}
