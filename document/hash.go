package document

import (
	"encoding/json"
	"fmt"
	"hash/fnv"

	"github.com/cyberphone/json-canonicalization/go/src/webpki.org/jsoncanonicalizer"
)

// CanonicalJSON serializes the Document into its RFC 8785 canonical JSON
// form: object keys sorted, numbers in their shortest round-trippable
// representation. Null-valued keys are pruned first so that two Documents
// that only differ in absent-vs-null keys canonicalize identically, matching
// the Equal comparator. A nil Document canonicalizes to an empty object.
func (d Document) CanonicalJSON() ([]byte, error) {
	pruned := pruneNulls(map[string]any(d))
	if pruned == nil {
		pruned = map[string]any{}
	}
	data, err := json.Marshal(pruned)
	if err != nil {
		return nil, fmt.Errorf("could not marshal document: %w", err)
	}
	canonical, err := jsoncanonicalizer.Transform(data)
	if err != nil {
		return nil, fmt.Errorf("could not canonicalize document: %w", err)
	}
	return canonical, nil
}

// CanonicalHashV1 is a structural hash over the Document's canonical JSON,
// backed by FNV-64. Deeply equal Documents hash equal: mapping-key order
// independence comes from canonicalization, sequence order dependence from
// JSON array order. The hash is not cryptographically secure; it only
// identifies a Document in a stable way.
func (d Document) CanonicalHashV1() uint64 {
	canonical, err := d.CanonicalJSON()
	if err != nil {
		return 0
	}
	h := fnv.New64()
	// fnv64 can never fail to write
	_, _ = h.Write(canonical)
	return h.Sum64()
}

// pruneNulls drops null-valued keys from mappings, recursively. Null entries
// inside sequences are kept: their position is significant.
func pruneNulls(v any) any {
	switch v := v.(type) {
	case map[string]any:
		if v == nil {
			return nil
		}
		out := make(map[string]any, len(v))
		for k, e := range v {
			if e == nil {
				continue
			}
			out[k] = pruneNulls(e)
		}
		return out
	case Document:
		return pruneNulls(map[string]any(v))
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			if e == nil {
				out[i] = nil
				continue
			}
			out[i] = pruneNulls(e)
		}
		return out
	default:
		return v
	}
}
