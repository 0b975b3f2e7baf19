package store

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"dzbooking/internal/models"
	"dzbooking/internal/utils"
)

// DemoEmail and DemoPassword are the credentials of the seeded demo account.
const (
	DemoEmail    = "user@example.com"
	DemoPassword = "password123"
)

var seedCompanies = []string{
	"شركة النقل الجزائرية",
	"الحافلات السريعة",
	"الاتحاد للنقل",
}

// Seed fills the store with deterministic demo data: three carriers, routes
// between every ordered city pair, three departures per route per day for
// the given number of days starting at startDate, four hotels with three
// room classes each, and one demo account.
func (s *Store) Seed(startDate string, days int) error {
	start, err := utils.ParseDate(startDate)
	if err != nil {
		return err
	}
	if days < 1 {
		days = 1
	}
	rng := rand.New(rand.NewSource(42))

	s.mu.Lock()
	defer s.mu.Unlock()

	companyIDs := make([]string, 0, len(seedCompanies))
	for _, name := range seedCompanies {
		c := models.Company{ID: uuid.NewString(), Name: name}
		s.companies[c.ID] = c
		companyIDs = append(companyIDs, c.ID)
	}

	for _, origin := range models.Cities {
		for _, dest := range models.Cities {
			if origin == dest {
				continue
			}
			route := models.Route{
				ID:              uuid.NewString(),
				OriginCity:      origin,
				DestinationCity: dest,
				DistanceKM:      50 + rng.Intn(751),
			}
			s.routes[route.ID] = route
			s.seedTrips(rng, route, companyIDs, start, days)
		}
	}

	s.seedHotels()

	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	demo := models.User{
		ID:          uuid.NewString(),
		Email:       DemoEmail,
		FullName:    "مستخدم تجريبي",
		PhoneNumber: "0555123456",
	}
	s.accounts[DemoEmail] = Account{User: demo, PasswordHash: string(hash)}
	return nil
}

func (s *Store) seedTrips(rng *rand.Rand, route models.Route, companyIDs []string, start time.Time, days int) {
	durationMinutes := int(float64(route.DistanceKM) * 1.2)

	for day := 0; day < days; day++ {
		date := utils.FormatDate(start.AddDate(0, 0, day))
		for _, departureHour := range []int{8, 12, 16} {
			busType := []string{models.BusStandard, models.BusPremium, models.BusVIP}[rng.Intn(3)]

			basePrice := float64(route.DistanceKM) * 0.5
			var price int64
			var totalSeats int
			features := []string{"مكيف"}
			switch busType {
			case models.BusPremium:
				price = int64(basePrice*1.5 + 0.5)
				totalSeats = 40
				features = append(features, "واي فاي", "مقاعد مريحة")
			case models.BusVIP:
				price = int64(basePrice*2 + 0.5)
				totalSeats = 30
				features = append(features, "واي فاي", "مقاعد مريحة", "شاشات فردية", "وجبة خفيفة", "مشروبات")
			default:
				price = int64(basePrice + 0.5)
				totalSeats = 50
			}

			totalMinutes := departureHour*60 + durationMinutes
			arrival := utils.FormatClock((totalMinutes/60)%24, totalMinutes%60)

			trip := models.Trip{
				ID:             uuid.NewString(),
				RouteID:        route.ID,
				CompanyID:      companyIDs[rng.Intn(len(companyIDs))],
				DepartureDate:  date,
				DepartureTime:  utils.FormatClock(departureHour, 0),
				ArrivalTime:    arrival,
				BusType:        busType,
				Price:          price,
				AvailableSeats: totalSeats,
				TotalSeats:     totalSeats,
				Features:       features,
			}
			s.trips[trip.ID] = trip

			seats := make([]models.Seat, 0, totalSeats)
			for n := 1; n <= totalSeats; n++ {
				seats = append(seats, models.Seat{
					ID:          uuid.NewString(),
					TripID:      trip.ID,
					SeatNumber:  n,
					IsAvailable: true,
					Price:       price,
				})
			}
			s.seats[trip.ID] = seats
		}
	}
}

type seedHotel struct {
	name    string
	city    string
	address string
	stars   int
	rating  float64
	reviews int
}

var seedHotelRows = []seedHotel{
	{"فندق الجزائر الكبير", "algiers", "شارع فرانز فانون، الجزائر العاصمة", 5, 4.7, 120},
	{"فندق وهران الساحلي", "oran", "شاطئ الأندلس، وهران", 4, 4.2, 86},
	{"فندق قسنطينة الحديث", "constantine", "شارع زيغود يوسف، قسنطينة", 4, 4.0, 64},
	{"فندق عنابة بلازا", "annaba", "شارع الإستقلال، عنابة", 5, 4.5, 95},
}

func (s *Store) seedHotels() {
	for _, row := range seedHotelRows {
		h := models.Hotel{
			ID:           uuid.NewString(),
			Name:         row.name,
			City:         row.city,
			Address:      row.address,
			Stars:        row.stars,
			Rating:       row.rating,
			ReviewsCount: row.reviews,
			Amenities:    []string{"واي فاي مجاني", "مطعم", "خدمة الغرف"},
		}
		s.hotels[h.ID] = h
		s.rooms[h.ID] = []models.Room{
			{ID: uuid.NewString(), HotelID: h.ID, Name: "غرفة قياسية", Capacity: 2, PricePerNight: starPrice(row.stars, 5000, 7000, 9000)},
			{ID: uuid.NewString(), HotelID: h.ID, Name: "غرفة ديلوكس", Capacity: 2, PricePerNight: starPrice(row.stars, 7000, 9000, 12000)},
			{ID: uuid.NewString(), HotelID: h.ID, Name: "غرفة عائلية", Capacity: 4, PricePerNight: starPrice(row.stars, 9000, 12000, 15000)},
		}
	}
}

// starPrice picks the nightly rate tier for a hotel's star count.
func starPrice(stars int, threeOrLess, four, five int64) int64 {
	switch {
	case stars <= 3:
		return threeOrLess
	case stars == 4:
		return four
	default:
		return five
	}
}
