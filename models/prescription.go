package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	FieldID      = "_id"
	FieldVersion = "__v"
	FieldTitle   = "title"
	FieldRxNum   = "rxNum"
	FieldRefills = "refills"
)

// Prescription has no fixed schema: it stores whatever the caller submitted
// plus the generated _id and __v.
type Prescription map[string]interface{}

func (rx Prescription) ID() (primitive.ObjectID, bool) {
	id, ok := rx[FieldID].(primitive.ObjectID)
	return id, ok
}
