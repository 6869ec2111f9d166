package entity

// Doctor sort keys
const (
	DoctorSortName       = "name"
	DoctorSortExperience = "experience"
	DoctorSortFee        = "fee"
)

// DoctorPageSize is the fixed page size of the public doctor listing.
const DoctorPageSize = 20

// DoctorFilter is a domain-level filter for the public doctor search.
// Used by repository layer to avoid coupling with delivery DTOs.
// The base filter (verified profile, active owning user) is always applied
// by the repository and is not represented here.
type DoctorFilter struct {
	Query           string // Case-insensitive substring across name/specialty/tags/bio (OR)
	CityID          uint   // 0 = no city filter
	SpecialtyID     uint   // 0 = no specialty filter
	AvailableOnline bool   // true restricts to doctors consulting online
	Sort            string // One of the DoctorSort* keys, defaults to name
	Page            int    // 1-based
}
