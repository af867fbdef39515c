// Command seed loads demo products and the default superadmin into the
// database. Products are upserted by slug, so re-running is safe.
package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/adamswinfred36-debug/Backend-MLST/models"
	"github.com/adamswinfred36-debug/Backend-MLST/store"
)

func main() {
	_ = godotenv.Load()

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		log.Fatal("❌ MONGODB_URI not configured")
	}
	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "mercadinho"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	s, err := store.Connect(ctx, uri, dbName)
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}
	defer s.Close(ctx)
	log.Println("✅ Connected to MongoDB")

	seedAdmin(ctx, s)
	seedProducts(ctx, s)

	log.Println("✅ Seed finished")
}

func seedAdmin(ctx context.Context, s *store.Store) {
	count, err := s.Admins.CountDocuments(ctx, bson.M{"role": models.RoleSuperAdmin})
	if err != nil {
		log.Fatalf("❌ Failed to check admins: %v", err)
	}
	if count > 0 {
		log.Println("👤 Superadmin already present, skipping")
		return
	}

	now := time.Now()
	admin := models.Admin{
		Username:  "admin",
		Email:     "admin@mercadolivre.com",
		Role:      models.RoleSuperAdmin,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := admin.SetPassword("admin123"); err != nil {
		log.Fatalf("❌ Failed to hash password: %v", err)
	}
	if _, err := s.Admins.InsertOne(ctx, admin); err != nil {
		log.Fatalf("❌ Failed to create admin: %v", err)
	}
	log.Println("👤 Superadmin created (admin@mercadolivre.com / admin123)")
}

func seedProducts(ctx context.Context, s *store.Store) {
	log.Println("📦 Seeding products...")

	for _, p := range demoProducts() {
		p.Slug = models.MakeSlug(p.Title)
		p.Active = true
		now := time.Now()
		p.CreatedAt = now
		p.UpdatedAt = now

		_, err := s.Products.ReplaceOne(ctx,
			bson.M{"slug": p.Slug},
			p,
			options.Replace().SetUpsert(true))
		if err != nil {
			log.Fatalf("❌ Failed to seed product %q: %v", p.Title, err)
		}
		log.Printf("   ✅ %s", p.Slug)
	}
}

func demoProducts() []models.Product {
	return []models.Product{
		{
			Title:       "Fogão 4 Bocas Atlas Mônaco Top Glass Acendimento Automático Cor Branco",
			Description: "Fogão de piso com 4 queimadores e forno com capacidade de 50 litros. Mesa de vidro temperado, acendimento automático e puxador de aço ergonômico.",
			Price:       models.Price{Original: 1021.90, Current: 199.90, Discount: 80},
			Images:      []string{"/uploads/placeholder-product.jpg"},
			Category:    "Casa, Móveis e Decoração",
			Brand:       "Atlas",
			Specifications: map[string]string{
				"Linha":    "Mônaco Top Glass",
				"Modelo":   "4 bocas com mesa de vidro",
				"Cor":      "Branco",
				"Voltagem": "127/220V",
			},
			Features: []string{
				"Mesa de vidro temperado",
				"Acendimento automático",
				"Forno Limpa Fácil",
			},
			Stock:    models.Stock{Quantity: 41, Available: true},
			Rating:   models.Rating{Average: 4.8, Count: 311},
			Seller:   models.Seller{Name: "Mercado Livre", Official: true, Sales: 1000000},
			Shipping: models.ShippingInfo{Free: true, Fast: true},
		},
		{
			Title:       "Notebook Dell Inspiron 15 3000 Intel Core i5 8GB RAM 256GB SSD Tela 15.6\" Full HD Windows 11",
			Description: "Notebook ideal para trabalho e estudos. Processador Intel Core i5 de 11ª geração, 8GB de RAM, SSD de 256GB e tela Full HD de 15.6 polegadas.",
			Price:       models.Price{Original: 3499.00, Current: 2699.00, Discount: 23},
			Images:      []string{"/uploads/placeholder-product.jpg"},
			Category:    "Informática",
			Brand:       "Dell",
			Specifications: map[string]string{
				"Processador":   "Intel Core i5-1135G7",
				"RAM":           "8GB DDR4",
				"Armazenamento": "256GB SSD",
				"Tela":          "15.6\" Full HD",
			},
			Features: []string{
				"SSD de 256GB para inicialização rápida",
				"Windows 11 Home original",
				"Webcam HD integrada",
			},
			Stock:    models.Stock{Quantity: 15, Available: true},
			Rating:   models.Rating{Average: 4.6, Count: 127},
			Seller:   models.Seller{Name: "Mercado Livre", Official: true, Sales: 1000000},
			Shipping: models.ShippingInfo{Free: true, Fast: false},
		},
		{
			Title:       "Smartphone Samsung Galaxy A54 5G 128GB 8GB RAM Câmera Tripla 50MP",
			Description: "Tela Super AMOLED de 6.4 polegadas, câmera tripla de 50MP com estabilização óptica, bateria de 5000mAh e resistência à água IP67.",
			Price:       models.Price{Original: 2499.00, Current: 1699.00, Discount: 32},
			Images:      []string{"/uploads/placeholder-product.jpg"},
			Category:    "Celulares e Telefones",
			Brand:       "Samsung",
			Specifications: map[string]string{
				"Tela":          "6.4\" Super AMOLED",
				"Armazenamento": "128GB",
				"RAM":           "8GB",
				"Bateria":       "5000mAh",
			},
			Features: []string{
				"Câmera tripla de 50MP",
				"Resistência à água IP67",
				"Carregamento rápido de 25W",
			},
			Stock:    models.Stock{Quantity: 60, Available: true},
			Rating:   models.Rating{Average: 4.7, Count: 842},
			Seller:   models.Seller{Name: "Mercado Livre", Official: true, Sales: 1000000},
			Shipping: models.ShippingInfo{Free: true, Fast: true},
		},
	}
}
