package select_package

// SelectPackageRequest HTTP request model
type SelectPackageRequest struct {
	PackageID int64 `json:"packageId"`
}
