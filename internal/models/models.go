package model

// All lists the models in migration order.
func All() []any {
	return []any{&User{}, &Tag{}, &Task{}}
}
