package constant

type ContextKey string

// UserKey holds the authenticated user resolved by the auth middleware.
const UserKey ContextKey = "auth-user"
