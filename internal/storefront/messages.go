package storefront

// Flash texts shown after storefront actions.
const (
	MsgAccountCreated       = "Account Created! Please Login."
	MsgSellerAccountCreated = "Seller Account Created Successfully! Please Login."
	MsgLoggedOut            = "You have been logged out."

	MsgAddedToCart     = "Product added to cart"
	MsgAddToCartFailed = "Error adding item to cart"
	MsgCartItemRemoved = "Item removed from cart"
	MsgRemoveFailed    = "Failed to remove item"
	MsgCartCleared     = "Cart cleared"

	MsgAddedToWishlist     = "Item added to wishlist!"
	MsgAddToWishlistFailed = "Please login or item already in wishlist"
	MsgWishlistRemoved     = "Item removed from wishlist"

	MsgReviewAdded  = "Review submitted"
	MsgReviewFailed = "Could not submit review"

	MsgAddressSaved    = "Address saved"
	MsgAddressRemoved  = "Address removed"
	MsgAddressSelected = "Delivery address selected"

	MsgOrderPlaced = "Order placed successfully!"
	MsgOrderFailed = "Order failed. Please try again."

	MsgProductCreated      = "Product Created Successfully!"
	MsgProductCreateFailed = "Failed to create product."
	MsgProductUpdated      = "Product Updated Successfully!"
	MsgProductUpdateFailed = "Failed to update product."
	MsgProductDeleted      = "Product Deleted"
	MsgDeleteFailed        = "Delete Failed"

	MsgLoadFailed = "Could not load this page. Please try again."
	MsgBadRequest = "That request was not valid."
)
