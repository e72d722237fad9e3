package store

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"havenly.backend/internal/infrastructure/models"
	"havenly.backend/pkg/crypto"
	"havenly.backend/pkg/utils"
)

type seedUser struct {
	email      string
	name       string
	password   string
	role       string
	avatar     string
	idVerified bool
}

var seedUsers = []seedUser{
	{"admin@vacationrentals.com", "Master Admin", "A-Strong-P@ss123!", "SUPERADMIN", "https://i.pravatar.cc/150?u=admin", true},
	{"hostmanager@vacationrentals.com", "Host Manager", "H-Manager-P@ss123!", "HOST", "https://i.pravatar.cc/150?u=host", true},
	{"testuser@vacationrentals.com", "Test Guest", "T-User-P@ss123!", "GUEST", "https://i.pravatar.cc/150?u=guest", false},
}

// Seed loads the demo dataset. It is idempotent: a non-empty users table
// means the store is already populated and nothing is written.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check seed state: %w", err)
	}
	if count > 0 {
		return nil
	}

	users := make([]*models.User, 0, len(seedUsers))
	for _, su := range seedUsers {
		hash, err := crypto.HashPassword(su.password)
		if err != nil {
			return fmt.Errorf("failed to hash seed password: %w", err)
		}
		avatar := su.avatar
		users = append(users, &models.User{
			ID:           utils.GenerateUUIDv7(),
			Email:        su.email,
			Name:         su.name,
			PasswordHash: hash,
			Role:         su.role,
			AvatarURL:    &avatar,
			IDVerified:   su.idVerified,
		})
	}
	if err := db.Create(&users).Error; err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}
	host, guest := users[1], users[2]

	villa := &models.Property{
		ID:            utils.GenerateUUIDv7(),
		HostID:        host.ID,
		Title:         "Villa Moderna con Vista al Mar",
		Description:   "Hermosa villa con impresionantes vistas al océano, piscina privada y todas las comodidades modernas.",
		PricePerNight: 250,
		Location:      "Marbella, España",
		Category:      "Villa",
		Images: mustJSON([]string{
			"https://images.unsplash.com/photo-1613490493576-7fde63acd811?q=80&w=1000&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1512917774080-9991f1c4c750?q=80&w=1000&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1613977257363-707ba9348227?q=80&w=1000&auto=format&fit=crop",
		}),
		Amenities:    mustJSON([]string{"WiFi", "Piscina", "Aire Acondicionado", "Cocina", "TV", "Parking"}),
		Rating:       4.8,
		ReviewsCount: 127,
		MaxGuests:    4,
		Status:       "available",
		TaxRate:      0.0625,
	}
	apartment := &models.Property{
		ID:            utils.GenerateUUIDv7(),
		HostID:        host.ID,
		Title:         "Apartamento Céntrico de Lujo",
		Description:   "Elegante apartamento en el corazón de la ciudad, cerca de los mejores restaurantes y museos.",
		PricePerNight: 180,
		Location:      "Madrid, España",
		Category:      "Apartamento",
		Images:        mustJSON([]string{"https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?q=80&w=1000&auto=format&fit=crop"}),
		Amenities:     mustJSON([]string{"WiFi", "Aire Acondicionado", "Cocina"}),
		Rating:        4.6,
		ReviewsCount:  89,
		MaxGuests:     2,
		Status:        "available",
		TaxRate:       0.0625,
	}
	if err := db.Create([]*models.Property{villa, apartment}).Error; err != nil {
		return fmt.Errorf("failed to seed properties: %w", err)
	}

	checkIn := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	booking := &models.Booking{
		ID:          utils.GenerateUUIDv7(),
		PropertyID:  villa.ID,
		GuestID:     guest.ID,
		HostID:      host.ID,
		CheckIn:     checkIn,
		CheckOut:    checkIn.AddDate(0, 0, 4),
		GuestsCount: 2,
		TotalPrice:  1000,
		TaxAmount:   100,
		Commission:  50,
		Status:      "paid",
	}
	if err := db.Create(booking).Error; err != nil {
		return fmt.Errorf("failed to seed booking: %w", err)
	}

	thread := &models.ChatThread{
		ID:             utils.GenerateUUIDv7(),
		ParticipantAID: guest.ID,
		ParticipantBID: host.ID,
		LastMessage:    "¡Hola! ¿La villa está disponible en julio?",
	}
	if err := db.Create(thread).Error; err != nil {
		return fmt.Errorf("failed to seed chat thread: %w", err)
	}
	message := &models.ChatMessage{
		ID:       utils.GenerateUUIDv7(),
		ThreadID: thread.ID,
		SenderID: guest.ID,
		Text:     thread.LastMessage,
		Kind:     "text",
	}
	if err := db.Create(message).Error; err != nil {
		return fmt.Errorf("failed to seed chat message: %w", err)
	}

	siteConfig := &models.SiteConfig{
		ID:                1,
		SiteName:          "Havenly",
		HeroTitle:         "Experimenta el lugar perfecto",
		HeroSubtitle:      "Descubre alojamientos únicos y vive experiencias inolvidables en los destinos más increíbles",
		HeroBgImage:       "https://images.unsplash.com/photo-1542314831-068cd1dbfeeb?q=80&w=2000&auto=format&fit=crop",
		Currency:          "USD",
		Language:          "es",
		EnableSocialLogin: true,
		MaintenanceMode:   false,
	}
	if err := db.Create(siteConfig).Error; err != nil {
		return fmt.Errorf("failed to seed site config: %w", err)
	}

	return nil
}

func mustJSON(values []string) string {
	b, err := json.Marshal(values)
	if err != nil {
		return "[]"
	}
	return string(b)
}
