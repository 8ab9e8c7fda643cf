package model

// All lists every table the service owns, in migration order.
func All() []any {
	return []any{
		&User{},
		&Profile{},
		&Post{},
		&Comment{},
		&Like{},
		&Follow{},
		&Notification{},
	}
}
