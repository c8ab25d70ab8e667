package store

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Serialize prepares a document for transport: the native "_id" is replaced
// by a string "id" and any nested identity or BSON container values are
// converted to plain JSON-friendly values. The input is not modified.
func Serialize(doc Document) map[string]interface{} {
	out := make(map[string]interface{}, len(doc))
	for k, v := range doc {
		if k == IDField {
			continue
		}
		out[k] = normalize(v)
	}
	if id, ok := doc[IDField]; ok {
		out["id"] = normalize(id)
	}
	return out
}

func SerializeAll(docs []Document) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(docs))
	for _, d := range docs {
		out = append(out, Serialize(d))
	}
	return out
}

func normalize(v interface{}) interface{} {
	switch val := v.(type) {
	case primitive.ObjectID:
		return IDString(val)
	case primitive.DateTime:
		return val.Time().UTC()
	case time.Time:
		return val.UTC()
	case Document:
		return normalizeMap(val)
	case primitive.M:
		return normalizeMap(val)
	case map[string]interface{}:
		return normalizeMap(val)
	case primitive.D:
		m := make(map[string]interface{}, len(val))
		for _, e := range val {
			m[e.Key] = normalize(e.Value)
		}
		return m
	case primitive.A:
		return normalizeSlice(val)
	case []interface{}:
		return normalizeSlice(val)
	default:
		return v
	}
}

func normalizeMap(m map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = normalize(v)
	}
	return out
}

func normalizeSlice(s []interface{}) []interface{} {
	out := make([]interface{}, len(s))
	for i, v := range s {
		out[i] = normalize(v)
	}
	return out
}
