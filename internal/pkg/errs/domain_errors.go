package errs

// Sentinels shared by the write and read sides
var (
	// Catalog
	ErrProductNotFound = New("product not found")

	// Inventory
	ErrOutOfStock = New("product out of stock")

	// Orders
	ErrOrderNotFound    = New("order not found")
	ErrDuplicateSession = New("duplicate payment session")

	// Payment events
	ErrSignatureInvalid = New("payment event signature invalid")
	ErrPayloadMalformed = New("payment event payload malformed")

	// Validation errors
	ErrDomainValidation = New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = New("database operation failed")
)
