package document

import (
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
)

// Merge overlays overrides onto a copy of base and returns the result.
// Override entries with a nil value are skipped: null means "no change",
// never "clear this field". There is no way to unset a key through Merge;
// callers that need deletion semantics should use MergePatch. The merge is
// shallow: an override value replaces the base value wholesale, nested
// mappings are not merged recursively.
func Merge(base Document, overrides map[string]any) Document {
	merged := base.DeepCopy()
	if merged == nil {
		merged = Document{}
	}
	for k, v := range overrides {
		if v == nil {
			continue
		}
		merged[k] = DeepCopyJSONValue(v)
	}
	return merged
}

// MergePatch applies patch to base per RFC 7386 (JSON merge patch) and
// returns the merged Document. In contrast to Merge, a null patch value
// deletes the key, and nested mappings are merged recursively.
func MergePatch(base, patch Document) (Document, error) {
	baseJSON, err := json.Marshal(map[string]any(base))
	if err != nil {
		return nil, fmt.Errorf("could not marshal base document: %w", err)
	}
	if base == nil {
		baseJSON = []byte("{}")
	}
	patchJSON, err := json.Marshal(map[string]any(patch))
	if err != nil {
		return nil, fmt.Errorf("could not marshal patch document: %w", err)
	}
	if patch == nil {
		patchJSON = []byte("{}")
	}
	mergedJSON, err := jsonpatch.MergePatch(baseJSON, patchJSON)
	if err != nil {
		return nil, fmt.Errorf("could not apply merge patch: %w", err)
	}
	var merged map[string]any
	if err := json.Unmarshal(mergedJSON, &merged); err != nil {
		return nil, fmt.Errorf("could not unmarshal merged document: %w", err)
	}
	return merged, nil
}
