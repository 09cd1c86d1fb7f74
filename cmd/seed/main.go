package main

import (
	"encoding/csv"
	"flag"
	"io"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"foodgram/internal/config"
	"foodgram/internal/database"
	"foodgram/internal/domain/catalog"
	"foodgram/internal/domain/user"
)

// Наполняет базу справочниками: ингредиенты из CSV, стартовый набор тегов
// и staff-пользователь для модерации каталога.
func main() {
	ingredientsPath := flag.String("ingredients", "data/ingredients.csv", "path to ingredients CSV (name,measurement_unit)")
	tagsPath := flag.String("tags", "data/tags.csv", "path to tags CSV (name,color,slug)")
	adminEmail := flag.String("admin-email", "admin@foodgram.local", "staff user email")
	adminPassword := flag.String("admin-password", "admin123", "staff user password")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed: ", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed: ", err)
	}

	// ================== INGREDIENTS ==================
	loaded, err := seedIngredients(db, *ingredientsPath)
	if err != nil {
		log.Fatal("failed to load ingredients: ", err)
	}
	log.Printf("Ingredients loaded: %d", loaded)

	// ================== TAGS ==================
	if err := seedTags(db, *tagsPath); err != nil {
		log.Fatal("failed to load tags: ", err)
	}
	log.Println("Tags seeded")

	// ================== STAFF USER ==================
	seedStaffUser(db, *adminEmail, *adminPassword)

	log.Println("Seed complete")
}

// seedIngredients грузит CSV вида "name,measurement_unit" без заголовка.
// Уже существующие пары имя+единица пропускаются; отсутствие файла не ошибка.
func seedIngredients(db *gorm.DB, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		log.Printf("ingredients CSV not found (%s), skipping", path)
		return 0, nil
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = 2

	loaded := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return loaded, err
		}

		name := strings.TrimSpace(record[0])
		unit := strings.TrimSpace(record[1])
		if name == "" || unit == "" {
			continue
		}

		var existing int64
		err = db.Model(&catalog.Ingredient{}).
			Where("name = ? AND measurement_unit = ?", name, unit).
			Count(&existing).Error
		if err != nil {
			return loaded, err
		}
		if existing > 0 {
			continue
		}

		ing := catalog.Ingredient{Name: name, MeasurementUnit: unit}
		if err := db.Create(&ing).Error; err != nil {
			return loaded, err
		}
		loaded++
	}
	return loaded, nil
}

// seedTags грузит CSV вида "name,color,slug"; без файла ставит базовый набор.
func seedTags(db *gorm.DB, path string) error {
	tags := []catalog.Tag{
		{Name: "Завтрак", Color: "#E26C2D", Slug: "breakfast"},
		{Name: "Обед", Color: "#49B64E", Slug: "lunch"},
		{Name: "Ужин", Color: "#8775D2", Slug: "dinner"},
	}

	if f, err := os.Open(path); err == nil {
		defer f.Close()

		reader := csv.NewReader(f)
		reader.FieldsPerRecord = 3

		tags = tags[:0]
		for {
			record, err := reader.Read()
			if err == io.EOF {
				break
			}
			if err != nil {
				return err
			}
			tags = append(tags, catalog.Tag{
				Name:  strings.TrimSpace(record[0]),
				Color: strings.TrimSpace(record[1]),
				Slug:  strings.TrimSpace(record[2]),
			})
		}
	} else {
		log.Printf("tags CSV not found (%s), using defaults", path)
	}

	for _, t := range tags {
		var existing int64
		if err := db.Model(&catalog.Tag{}).Where("slug = ?", t.Slug).Count(&existing).Error; err != nil {
			return err
		}
		if existing == 0 {
			if err := db.Create(&t).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func seedStaffUser(db *gorm.DB, email, password string) {
	email = strings.ToLower(email)

	var existing int64
	db.Model(&user.User{}).Where("email = ?", email).Count(&existing)
	if existing > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}
	admin := user.User{
		Email:        email,
		Username:     "admin",
		FirstName:    "Администратор",
		LastName:     "Foodgram",
		PasswordHash: string(hash),
		IsStaff:      true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatal("failed to create staff user: ", err)
	}
	log.Printf("Staff user created: %s", admin.Email)
}
