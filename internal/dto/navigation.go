package dto

// NavigationQuery asks the gate for a routing decision on a client route.
type NavigationQuery struct {
	Route string `form:"route" binding:"required"`
}
