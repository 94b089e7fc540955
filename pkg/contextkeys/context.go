package contextkeys

// Ключи gin-контекста, под которыми auth middleware кладет
// личность вызывающего. Строки, т.к. gin.Context.Set принимает string.
const (
	UserIDKey = "userID"
	RoleKey   = "role"
)
