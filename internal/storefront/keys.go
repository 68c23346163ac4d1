package storefront

// Persisted keys, one collection per key.
const (
	KeyCart           = "cart"
	KeyWishlist       = "wishlist"
	KeyUser           = "user"
	KeyOrders         = "orders"
	KeyTheme          = "theme"
	KeyComparison     = "comparison"
	KeyRecentlyViewed = "recentlyViewed"
)

const (
	maxComparison     = 3
	maxRecentlyViewed = 5
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}
