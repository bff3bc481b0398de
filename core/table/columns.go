// Package table implements the flat-table master records format.
//
// A master export is a single sheet where each product contributes one
// decorated header row followed by one row per ingredient. The marker
// "--- PRODUCT: <name> ---" in the Item column is the only structural
// delimiter, chosen so it cannot collide with a real ingredient name.
package table

// Marker decoration around product names in the Item column
const (
	MarkerPrefix = "--- PRODUCT: "
	MarkerSuffix = " ---"
	markerProbe  = "--- PRODUCT:"
)

// Column names of the flat format. Restore matches on these names, so
// they are part of the on-disk contract.
const (
	ColItem          = "Item"
	ColQty           = "Qty"
	ColUnit          = "Unit"
	ColPricePerUnit  = "Price/Unit"
	ColTotalCost     = "Total Cost"
	ColRawMatPerUnit = "Raw Mat/Unit"
	ColYield         = "Yield"
	ColWastePct      = "Waste %"
	ColMRP           = "MRP"
	ColFullBatchMRP  = "Full Batch MRP"
	ColPerPieceMRP   = "Per Piece MRP"
	ColDeliveryMRP   = "Delivery MRP"
	ColDineInMRP     = "Dine-In MRP"
	ColMarginPct     = "Margin %"
	ColOHAllocPct    = "OH Alloc %"
)

// Columns is the full column set in export order. Every emitted row has
// exactly these columns, blank-filled where a field does not apply.
var Columns = []string{
	ColItem,
	ColQty,
	ColUnit,
	ColPricePerUnit,
	ColTotalCost,
	ColRawMatPerUnit,
	ColYield,
	ColWastePct,
	ColMRP,
	ColFullBatchMRP,
	ColPerPieceMRP,
	ColDeliveryMRP,
	ColDineInMRP,
	ColMarginPct,
	ColOHAllocPct,
}
