package services

import (
	"encoding/json"
	"log"

	"eldercare/config"
	"eldercare/constants"
	appErrors "eldercare/errors"
	"eldercare/models"
)

func jsonList(items ...string) json.RawMessage {
	data, _ := json.Marshal(items)
	return data
}

func intPtr(v int) *int {
	return &v
}

// SampleRooms returns the demo fixture set used by SeedRooms
func SampleRooms() []models.Room {
	return []models.Room{
		{
			Name:         "Artha Senior Care - Assisted Living",
			FacilityName: "Artha Senior Care",
			Location: models.Location{
				City:    "Gurugram",
				Area:    "Sector 53",
				Address: "Sector 53, Gurugram, Haryana",
			},
			Pricing: models.Pricing{
				Rent:             70000,
				SecurityDeposit:  250000,
				AdmissionCharge:  intPtr(20000),
				PettyCashReserve: intPtr(25000),
				Currency:         constants.CurrencyINR,
			},
			RoomType:     constants.RoomTypeAssistedLiving,
			Occupancy:    constants.OccupancySingle,
			LengthOfStay: constants.StayLong,
			CareLevel:    constants.CareLevelHigh,
			Description:  "Artha Senior Care provides comprehensive assisted living, daycare, and memory care services for seniors in Gurugram. They provide round-the-clock nursing care, medication management, and help with everyday activities to ensure seniors have access to the support they need.",
			MedicalServices: jsonList(
				"Round-the-clock nursing care",
				"Medication management",
				"Memory care for dementia and Alzheimer's",
				"Physiotherapy",
				"Pre-and post-operative care",
				"Regular health check-ups",
				"Doctor visits",
				"On-call ambulance services",
			),
			Lifestyle: models.LifestyleInfo{
				Rating: 8,
				Amenities: jsonList(
					"Private Balcony", "Sofa", "Air Conditioning", "Television",
					"Internet", "Bed & Mattress", "Elevator", "Fire Alarm",
				),
			},
			Medical: models.MedicalInfo{
				Rating: 9,
				Services: jsonList(
					"24/7 medical support", "Specialized memory care",
					"Physiotherapy facility", "Blood sugar monitoring",
					"Blood pressure monitoring", "Post-surgery recovery support",
				),
			},
			Services: models.ServicesInfo{
				Rating: 8,
				Offerings: jsonList(
					"Daily assistance with dressing", "Grooming and bathing support",
					"Meal preparation and dining", "Housekeeping services",
					"Laundry services", "Transportation for appointments",
				),
			},
			Community: models.CommunityInfo{
				Rating: 8,
				Activities: jsonList(
					"Fitness classes", "Social events", "Indoor games (chess, carom)",
					"Arts and crafts", "Library access", "Festival celebrations",
				),
			},
			Facilities: models.Facilities{
				SharedSpaces: jsonList(
					"Lounge", "Library", "Central dining area",
					"Outdoor areas", "Visitor room", "Help desk",
				),
				SafetyFeatures: jsonList(
					"Fire alarm", "Power backup", "CCTV surveillance",
					"Fire extinguisher", "Emergency response system",
				),
				Accessibility: jsonList(
					"Wheelchair friendly", "Grab handles", "Elevator access",
					"Ramp access", "Wide doorways",
				),
			},
			Images: jsonList(
				"https://images.pexels.com/photos/33339522/pexels-photo-33339522.jpeg",
				"https://example.com/artha-caregivers.jpg",
				"https://example.com/artha-support.jpg",
			),
			ContactInfo: models.ContactInfo{
				Phone:   "+91-XXXXXXXXXX",
				Email:   "info@arthaseniorcare.com",
				Website: "https://arthaseniorcare.com",
			},
			IsActive: true,
		},
		{
			Name:         "Aurum Senior and Assisted Living",
			FacilityName: "Aurum Senior Living",
			Location: models.Location{
				City:    "Gurugram",
				Area:    "Sector 54",
				Address: "Sector 54, Gurugram, Haryana",
			},
			Pricing: models.Pricing{
				Rent:             70000,
				SecurityDeposit:  200000,
				AdmissionCharge:  intPtr(15000),
				PettyCashReserve: intPtr(20000),
				Currency:         constants.CurrencyINR,
			},
			RoomType:     constants.RoomTypeAssistedLiving,
			Occupancy:    constants.OccupancyDouble,
			LengthOfStay: constants.StayMedium,
			CareLevel:    constants.CareLevelMedium,
			Description:  "Aurum Senior Living offers premium assisted living services with a focus on community and wellness. The facility provides personalized care plans and modern amenities for comfortable senior living.",
			MedicalServices: jsonList(
				"24/7 nursing care", "Medication management", "Health monitoring",
				"Emergency response", "Regular health check-ups",
			),
			Lifestyle: models.LifestyleInfo{
				Rating: 9,
				Amenities: jsonList(
					"Private Balcony", "Air Conditioning", "Television", "Internet",
					"Bed & Mattress", "Elevator", "Fire Alarm", "Power Backup",
				),
			},
			Medical: models.MedicalInfo{
				Rating: 8,
				Services: jsonList(
					"Basic medical support", "Health monitoring",
					"Emergency response", "Regular check-ups",
				),
			},
			Services: models.ServicesInfo{
				Rating: 9,
				Offerings: jsonList(
					"Personal care assistance", "Meal services", "Housekeeping",
					"Laundry", "Transportation",
				),
			},
			Community: models.CommunityInfo{
				Rating: 9,
				Activities: jsonList(
					"Wellness programs", "Social activities", "Recreational events",
					"Community dining", "Outdoor activities",
				),
			},
			Facilities: models.Facilities{
				SharedSpaces: jsonList(
					"Community lounge", "Dining hall", "Garden area",
					"Activity room", "Reception area",
				),
				SafetyFeatures: jsonList(
					"Security system", "Emergency alarms", "Fire safety", "24/7 monitoring",
				),
				Accessibility: jsonList(
					"Wheelchair accessible", "Elevator access", "Ramp access", "Wide corridors",
				),
			},
			Images: jsonList(
				"https://images.pexels.com/photos/33339522/pexels-photo-33339522.jpeg",
				"https://example.com/aurum-amenities.jpg",
			),
			ContactInfo: models.ContactInfo{
				Phone: "+91-XXXXXXXXXX",
				Email: "info@aurumseniorliving.com",
			},
			IsActive: true,
		},
		{
			Name:         "NEMA Eldercare",
			FacilityName: "NEMA Eldercare",
			Location: models.Location{
				City:    "Gurugram",
				Area:    "Sector 56",
				Address: "Sector 56, Gurugram, Haryana",
			},
			Pricing: models.Pricing{
				Rent:             100000,
				SecurityDeposit:  300000,
				AdmissionCharge:  intPtr(25000),
				PettyCashReserve: intPtr(30000),
				Currency:         constants.CurrencyINR,
			},
			RoomType:     constants.RoomTypeIndependentLiving,
			Occupancy:    constants.OccupancySingle,
			LengthOfStay: constants.StayLong,
			CareLevel:    constants.CareLevelLow,
			Description:  "NEMA Eldercare specializes in independent living with premium amenities and luxury services. The facility offers high-end accommodations with optional care services.",
			MedicalServices: jsonList(
				"Basic health monitoring", "Emergency response", "Optional nursing care",
				"Health check-ups", "Wellness programs",
			),
			Lifestyle: models.LifestyleInfo{
				Rating: 10,
				Amenities: jsonList(
					"Luxury furnishings", "Premium appliances", "High-speed internet",
					"Smart home features", "Private garden", "Concierge services",
				),
			},
			Medical: models.MedicalInfo{
				Rating: 7,
				Services: jsonList(
					"Basic health support", "Emergency response", "Optional care services",
				),
			},
			Services: models.ServicesInfo{
				Rating: 10,
				Offerings: jsonList(
					"Concierge services", "Housekeeping", "Laundry",
					"Transportation", "Personal assistance",
				),
			},
			Community: models.CommunityInfo{
				Rating: 10,
				Activities: jsonList(
					"Luxury events", "Fine dining", "Cultural activities",
					"Wellness programs", "Social gatherings",
				),
			},
			Facilities: models.Facilities{
				SharedSpaces: jsonList(
					"Luxury lounge", "Fine dining restaurant", "Spa and wellness center",
					"Library", "Business center",
				),
				SafetyFeatures: jsonList(
					"Advanced security", "Emergency systems", "Fire safety", "24/7 monitoring",
				),
				Accessibility: jsonList(
					"Premium accessibility", "Elevator access", "Wide spaces", "Luxury accommodations",
				),
			},
			Images: jsonList(
				"https://images.pexels.com/photos/33339522/pexels-photo-33339522.jpeg",
				"https://example.com/nema-amenities.jpg",
			),
			ContactInfo: models.ContactInfo{
				Phone: "+91-XXXXXXXXXX",
				Email: "info@nemaeldercare.com",
			},
			IsActive: true,
		},
	}
}

// SeedRooms replaces all rooms with the sample fixture set
func SeedRooms() (int, error) {
	rooms := SampleRooms()

	if err := config.DB.Exec("DELETE FROM rooms").Error; err != nil {
		return 0, appErrors.NewAppError(appErrors.ErrCodeDBError, "failed to clear rooms", err)
	}

	if err := config.DB.Create(&rooms).Error; err != nil {
		return 0, appErrors.NewAppError(appErrors.ErrCodeDBError, "failed to insert sample rooms", err)
	}

	go func() {
		if err := IndexAllRooms(); err != nil {
			log.Printf("Failed to reindex rooms after seeding: %v", err)
		}
	}()
	go DeleteFromRedis(config.Ctx, config.RedisClient, "rooms:*")

	return len(rooms), nil
}
