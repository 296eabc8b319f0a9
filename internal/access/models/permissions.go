package models

// Permission is a single grant an admin role can carry.
type Permission string

const (
	PermissionCreateAsset Permission = "CreateAsset"
	PermissionReadAsset   Permission = "ReadAsset"
	PermissionUpdateAsset Permission = "UpdateAsset"
	PermissionDeleteAsset Permission = "DeleteAsset"

	PermissionCreateCatalog Permission = "CreateCatalog"
	PermissionReadCatalog   Permission = "ReadCatalog"
	PermissionUpdateCatalog Permission = "UpdateCatalog"
	PermissionDeleteCatalog Permission = "DeleteCatalog"

	PermissionCreateCustomer Permission = "CreateCustomer"
	PermissionReadCustomer   Permission = "ReadCustomer"
	PermissionUpdateCustomer Permission = "UpdateCustomer"
	PermissionDeleteCustomer Permission = "DeleteCustomer"

	PermissionCreateOrder Permission = "CreateOrder"
	PermissionReadOrder   Permission = "ReadOrder"
	PermissionUpdateOrder Permission = "UpdateOrder"
	PermissionDeleteOrder Permission = "DeleteOrder"

	PermissionCreateProduct Permission = "CreateProduct"
	PermissionReadProduct   Permission = "ReadProduct"
	PermissionUpdateProduct Permission = "UpdateProduct"
	PermissionDeleteProduct Permission = "DeleteProduct"

	PermissionCreateStockLocation Permission = "CreateStockLocation"
	PermissionReadStockLocation   Permission = "ReadStockLocation"
	PermissionUpdateStockLocation Permission = "UpdateStockLocation"

	PermissionReadSettings   Permission = "ReadSettings"
	PermissionUpdateSettings Permission = "UpdateSettings"
)

// adminPermissions is the fixed grant set for tenant admin roles. Versioned
// here as the single source of truth: template changes are a one-line diff
// with an obvious test update.
var adminPermissions = []Permission{
	PermissionCreateAsset, PermissionReadAsset, PermissionUpdateAsset, PermissionDeleteAsset,
	PermissionCreateCatalog, PermissionReadCatalog, PermissionUpdateCatalog, PermissionDeleteCatalog,
	PermissionCreateCustomer, PermissionReadCustomer, PermissionUpdateCustomer, PermissionDeleteCustomer,
	PermissionCreateOrder, PermissionReadOrder, PermissionUpdateOrder, PermissionDeleteOrder,
	PermissionCreateProduct, PermissionReadProduct, PermissionUpdateProduct, PermissionDeleteProduct,
	PermissionCreateStockLocation, PermissionReadStockLocation, PermissionUpdateStockLocation,
	PermissionReadSettings, PermissionUpdateSettings,
}

// AdminPermissions returns a copy of the fixed admin grant set.
func AdminPermissions() []Permission {
	out := make([]Permission, len(adminPermissions))
	copy(out, adminPermissions)
	return out
}
