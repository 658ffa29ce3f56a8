package dto

import "go.mongodb.org/mongo-driver/bson/primitive"

// mustObjectID converts a hex id that already passed the objectid validator.
func mustObjectID(hex string) primitive.ObjectID {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		panic("dto: unvalidated object id " + hex)
	}
	return id
}

// uniqueObjectIDs converts validated hex ids, dropping repeats and keeping first-seen order.
func uniqueObjectIDs(hexes []string) []primitive.ObjectID {
	out := make([]primitive.ObjectID, 0, len(hexes))
	seen := make(map[primitive.ObjectID]struct{}, len(hexes))
	for _, h := range hexes {
		id := mustObjectID(h)
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
