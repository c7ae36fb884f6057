package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Patient holds its prescriptions in Scripts. Entries are prescription
// ObjectIDs, or single-key documents such as {rxNum: ...} written by the
// fragment link mode.
type Patient struct {
	ID      primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name    string             `json:"name" bson:"name"`
	Dob     time.Time          `json:"dob" bson:"dob"`
	Scripts []interface{}      `json:"scripts" bson:"scripts"`
	Version int                `json:"__v" bson:"__v"`
}

// Normalize rewrites decoded embedded documents as maps at every depth so
// they render as JSON objects, and replaces a missing scripts array with an
// empty one.
func (p *Patient) Normalize() {
	if p.Scripts == nil {
		p.Scripts = []interface{}{}
		return
	}
	for i, entry := range p.Scripts {
		p.Scripts[i] = normalizeValue(entry)
	}
}

func normalizeValue(v interface{}) interface{} {
	switch value := v.(type) {
	case primitive.D:
		m := make(bson.M, len(value))
		for _, e := range value {
			m[e.Key] = normalizeValue(e.Value)
		}
		return m
	case bson.M:
		for k, item := range value {
			value[k] = normalizeValue(item)
		}
		return value
	case map[string]interface{}:
		for k, item := range value {
			value[k] = normalizeValue(item)
		}
		return value
	case primitive.A:
		items := make([]interface{}, len(value))
		for i, item := range value {
			items[i] = normalizeValue(item)
		}
		return items
	case []interface{}:
		for i, item := range value {
			value[i] = normalizeValue(item)
		}
		return value
	}
	return v
}

// ScriptIDs returns the ObjectID entries of Scripts in order.
func (p Patient) ScriptIDs() []primitive.ObjectID {
	ids := []primitive.ObjectID{}
	for _, entry := range p.Scripts {
		if id, ok := entry.(primitive.ObjectID); ok {
			ids = append(ids, id)
		}
	}
	return ids
}
