package constants

// Room type
const (
	RoomTypeAssistedLiving    = "assisted_living"
	RoomTypeIndependentLiving = "independent_living"
	RoomTypeMemoryCare        = "memory_care"
	RoomTypeDaycare           = "daycare"
)

// Occupancy
const (
	OccupancySingle = "single"
	OccupancyDouble = "double"
	OccupancyShared = "shared"
)

// Length of stay
const (
	StayShort  = "short"
	StayMedium = "medium"
	StayLong   = "long"
)

// Care level
const (
	CareLevelHigh   = "high"
	CareLevelMedium = "medium"
	CareLevelLow    = "low"
)

// Currency
const (
	CurrencyINR = "INR"
	CurrencyUSD = "USD"
	CurrencyEUR = "EUR"
)

// Contact status
const (
	ContactStatusNew        = "new"
	ContactStatusInProgress = "in_progress"
	ContactStatusResolved   = "resolved"
)

// Payment type
const (
	PaymentTypeBuy  = "buy"
	PaymentTypeRent = "rent"
)

// Payment status
const (
	PaymentStatusPending  = "pending"
	PaymentStatusVerified = "verified"
	PaymentStatusRejected = "rejected"
)

// Admin roles
const (
	AdminRoleSuper = "super_admin"
	AdminRoleAdmin = "admin"
)

// User roles
const (
	UserRoleAdmin        = "admin"
	UserRoleCaregiver    = "caregiver"
	UserRoleFamilyMember = "family_member"
	UserRolePatient      = "patient"
)

// Rating bounds for the four category ratings
const (
	RatingMin = 1
	RatingMax = 10
)

// Any category rating at or above this marks a room as top rated
const TopRatedThreshold = 8

// Comparison size bounds
const (
	CompareMinRooms = 2
	CompareMaxRooms = 5
)

var RoomTypes = []string{RoomTypeAssistedLiving, RoomTypeIndependentLiving, RoomTypeMemoryCare, RoomTypeDaycare}
var Occupancies = []string{OccupancySingle, OccupancyDouble, OccupancyShared}
var StayLengths = []string{StayShort, StayMedium, StayLong}
var CareLevels = []string{CareLevelHigh, CareLevelMedium, CareLevelLow}
var Currencies = []string{CurrencyINR, CurrencyUSD, CurrencyEUR}
var UserRoles = []string{UserRoleAdmin, UserRoleCaregiver, UserRoleFamilyMember, UserRolePatient}

// IsOneOf reports whether value is contained in the allowed set.
func IsOneOf(value string, allowed []string) bool {
	for _, v := range allowed {
		if v == value {
			return true
		}
	}
	return false
}
