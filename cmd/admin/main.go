// Command admin is the operator CLI: it bootstraps authority accounts and
// manages complaints directly against the database, without going through
// the HTTP surface.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"empathos/backend/internal/auth"
	"empathos/backend/internal/complaint"
	"empathos/backend/internal/config"
	"empathos/backend/internal/logger"
	"empathos/backend/internal/models"
	"empathos/backend/internal/storage"
)

func main() {
	godotenv.Load()
	cfg := config.Load()
	log := logger.Get()

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		log.Error("failed to connect database", "error", err)
		os.Exit(1)
	}

	store := storage.NewStorageService(db, nil) // No redis needed for the admin CLI

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "create-authority":
		if len(os.Args) != 5 {
			fmt.Println("Usage: admin create-authority <username> <email> <password>")
			os.Exit(1)
		}
		accounts := auth.NewService(store, auth.NewBcryptPasswordHasher(cfg.Auth.BcryptCost))
		user, err := accounts.Register(os.Args[2], os.Args[3], os.Args[4], models.RoleAuthority)
		if err != nil {
			log.Error("failed to create authority account", "error", err)
			os.Exit(1)
		}
		fmt.Printf("Authority account %q created (id %d).\n", user.Username, user.ID)

	case "set-status":
		if len(os.Args) != 4 {
			fmt.Println("Usage: admin set-status <complaint_id> <status>")
			os.Exit(1)
		}
		id, err := strconv.ParseUint(os.Args[2], 10, 64)
		if err != nil {
			fmt.Println("Invalid complaint ID. Please provide an integer.")
			os.Exit(1)
		}
		complaints := complaint.NewService(store)
		if err := complaints.UpdateStatus(uint(id), models.ComplaintStatus(os.Args[3])); err != nil {
			log.Error("failed to update complaint", "complaint_id", id, "error", err)
			os.Exit(1)
		}
		fmt.Printf("Complaint %d set to %q.\n", id, os.Args[3])

	case "list-complaints":
		complaints, err := store.GetAllComplaints()
		if err != nil {
			log.Error("failed to list complaints", "error", err)
			os.Exit(1)
		}
		for _, cpl := range complaints {
			fmt.Printf("#%d [%s] %s / %s (by %s, %s)\n",
				cpl.ID, cpl.Status, cpl.Title, cpl.Category, cpl.Username,
				cpl.CreatedAt.Format("2006-01-02 15:04:05"))
		}

	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("Usage: admin <command> [args]")
	fmt.Println("Commands:")
	fmt.Println("  create-authority <username> <email> <password>")
	fmt.Println("  set-status <complaint_id> <status>")
	fmt.Println("  list-complaints")
}
