package main

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"birthday-rsvp/internal/config"
	"birthday-rsvp/internal/handler"
	"birthday-rsvp/internal/models"
	"birthday-rsvp/internal/notifier"
	"birthday-rsvp/internal/storage"
)

var (
	success = color.New(color.FgGreen).SprintFunc()
	failure = color.New(color.FgRed).SprintFunc()
	bold    = color.New(color.Bold).SprintFunc()
)

func main() {
	fmt.Println("🎉 Birthday Party RSVP Notifier")
	fmt.Println("===============================")

	// A missing .env is fine, the environment may already be set
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Printf("Error loading .env: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	rsvpStorage, err := storage.NewStorage(cfg.RSVPFile)
	if err != nil {
		fmt.Printf("Error initializing storage: %v\n", err)
		os.Exit(1)
	}

	party, err := storage.LoadParty(cfg.PartyFile)
	if err != nil {
		fmt.Printf("Error loading party details: %v\n", err)
		os.Exit(1)
	}

	emailNotifier := notifier.NewNotifier(cfg.Notifier(), notifier.WithLogger(logger))
	rsvpHandler := handler.NewRSVPHandler(emailNotifier, *party)
	rsvpHandler.SetLogger(logger)

	fmt.Printf("\nSending as %s via %s:%d\n", cfg.Email, cfg.SMTPServer, cfg.SMTPPort)
	fmt.Printf("Loaded %d RSVPs for %s's party\n", len(rsvpStorage.GetAllRSVPs()), party.ChildName)

	go startCLI(rsvpHandler, rsvpStorage)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	fmt.Println("\n\nShutting down...")
	fmt.Println("Goodbye! 👋")
}

func startCLI(rsvpHandler *handler.RSVPHandler, storage *storage.Storage) {
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Println("\nCommands:")
		fmt.Println("  1. View all RSVPs")
		fmt.Println("  2. View RSVPs by status")
		fmt.Println("  3. Notify host about an RSVP")
		fmt.Println("  4. Send confirmation to a guest")
		fmt.Println("  5. Send both emails")
		fmt.Println("  6. Reload RSVP export")
		fmt.Println("  7. Show SMTP provider presets")
		fmt.Println("  8. Exit")
		fmt.Print("\nEnter command (1-8): ")

		if !scanner.Scan() {
			break
		}

		command := strings.TrimSpace(scanner.Text())

		switch command {
		case "1":
			viewAllRSVPs(storage)
		case "2":
			viewRSVPsByStatus(scanner, storage)
		case "3":
			send(scanner, storage, "Host notification", rsvpHandler.NotifyHost)
		case "4":
			send(scanner, storage, "Guest confirmation", rsvpHandler.NotifyGuest)
		case "5":
			send(scanner, storage, "RSVP emails", rsvpHandler.HandleRSVP)
		case "6":
			if err := storage.Load(); err != nil {
				fmt.Printf("%s Error reloading RSVPs: %v\n", failure("❌"), err)
			} else {
				fmt.Printf("%s Loaded %d RSVPs\n", success("✅"), len(storage.GetAllRSVPs()))
			}
		case "7":
			viewProviders()
		case "8":
			fmt.Println("Exiting...")
			os.Exit(0)
		default:
			fmt.Println("Invalid command. Please try again.")
		}
	}
}

func send(scanner *bufio.Scanner, storage *storage.Storage, what string, sendFn func(models.RSVP) error) {
	fmt.Print("Enter RSVP number: ")
	if !scanner.Scan() {
		return
	}

	n, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil {
		fmt.Println("Invalid number.")
		return
	}

	rsvp, err := storage.GetRSVP(n - 1)
	if err != nil {
		fmt.Printf("%s %v\n", failure("❌"), err)
		return
	}

	fmt.Printf("\nSending to %s (%s)...\n", rsvp.ParentName, rsvp.Email)
	if err := sendFn(*rsvp); err != nil {
		fmt.Printf("%s Error sending %s: %v\n", failure("❌"), strings.ToLower(what), err)
		if sendErr, ok := notifier.AsSendError(err); ok && sendErr.Retryable() {
			fmt.Println("   This looks temporary, you can try again.")
		}
	} else {
		fmt.Printf("%s %s sent successfully!\n", success("✅"), what)
	}
}

func printRSVP(title string, rsvp models.RSVP) {
	fmt.Println(bold(title))
	fmt.Printf("Child: %s\n", rsvp.ChildName)
	fmt.Printf("Email: %s\n", rsvp.Email)
	fmt.Printf("Phone: %s\n", rsvp.Phone)
	fmt.Printf("Status: %s %s\n", rsvp.AttendanceStatus.Icon(), rsvp.AttendanceStatus.Label())
	fmt.Printf("Kids: %d, Adults: %d\n", rsvp.Kids(), rsvp.Adults())
	if rsvp.FoodAllergies != "" {
		fmt.Printf("Food allergies: %s\n", rsvp.FoodAllergies)
	}
	fmt.Println(strings.Repeat("-", 60))
}

func viewAllRSVPs(storage *storage.Storage) {
	rsvps := storage.GetAllRSVPs()
	if len(rsvps) == 0 {
		fmt.Println("\nNo RSVPs found.")
		return
	}

	fmt.Printf("\n📋 All RSVPs (%d total):\n", len(rsvps))
	fmt.Println(strings.Repeat("-", 60))
	for i, rsvp := range rsvps {
		printRSVP(fmt.Sprintf("#%d %s", i+1, rsvp.ParentName), rsvp)
	}
}

func viewRSVPsByStatus(scanner *bufio.Scanner, storage *storage.Storage) {
	fmt.Println("\nSelect status:")
	fmt.Println("  1. Coming")
	fmt.Println("  2. Cannot attend")
	fmt.Println("  3. Maybe")
	fmt.Print("Enter choice (1-3): ")

	if !scanner.Scan() {
		return
	}

	choice := strings.TrimSpace(scanner.Text())
	var status models.AttendanceStatus

	switch choice {
	case "1":
		status = models.AttendanceYes
	case "2":
		status = models.AttendanceNo
	case "3":
		status = models.AttendanceMaybe
	default:
		fmt.Println("Invalid choice.")
		return
	}

	rsvps := storage.GetRSVPsByStatus(status)
	if len(rsvps) == 0 {
		fmt.Printf("\nNo RSVPs with status '%s'.\n", status.Label())
		return
	}

	fmt.Printf("\n📋 RSVPs with status '%s' (%d total):\n", status.Label(), len(rsvps))
	fmt.Println(strings.Repeat("-", 60))
	for _, rsvp := range rsvps {
		printRSVP(rsvp.ParentName, rsvp)
	}
}

func viewProviders() {
	fmt.Println("\n📮 SMTP provider presets (set SMTP_PROVIDER):")
	for _, name := range config.ProviderNames() {
		p, _ := config.LookupProvider(name)
		fmt.Printf("  %s: %s:%d\n", bold(p.Name), p.Host, p.Port)
		if p.Note != "" {
			fmt.Printf("    %s\n", p.Note)
		}
	}
}
