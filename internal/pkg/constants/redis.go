package constants

// Redis key formats
const (
	KeyDriverSnapshot = "driver:snapshot:%s" // Format: driver:snapshot:{driver_id}
	KeyDriverGeo      = "driver:geo"         // GEO set of all driver positions
	KeyDriverCell     = "driver:cell:%s"     // Format: driver:cell:{geohash} - set of driver IDs in a cell
)

// Redis hash fields
const (
	FieldLatitude  = "lat"
	FieldLongitude = "lng"
	FieldTimestamp = "ts"
	FieldStatus    = "status"
	FieldGeohash   = "cell"
)
