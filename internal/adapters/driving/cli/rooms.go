package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var roomsCmd = &cobra.Command{
	Use:   "rooms",
	Short: "List rooms for the signed-in owner's property",
	RunE:  runRooms,
}

var tenantsCmd = &cobra.Command{
	Use:   "tenants",
	Short: "List tenants for the signed-in owner's property",
	RunE:  runTenants,
}

var ticketsCmd = &cobra.Command{
	Use:   "tickets",
	Short: "List maintenance tickets",
	RunE:  runTickets,
}

func init() {
	rootCmd.AddCommand(roomsCmd)
	rootCmd.AddCommand(tenantsCmd)
	rootCmd.AddCommand(ticketsCmd)
}

// requireAuth loads the session and returns the owner's property ID,
// or an error when the session is anonymous.
func requireAuth(ctx context.Context) (string, error) {
	if sessionService == nil || apiClient == nil {
		return "", errors.New("session service not configured")
	}
	sessionService.LoadSession(ctx)
	creds := sessionService.Credentials()
	if creds == nil {
		return "", errors.New("not signed in; run 'homebase login' first")
	}
	return creds.User.PropertyID, nil
}

func runRooms(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	propertyID, err := requireAuth(ctx)
	if err != nil {
		return err
	}

	rooms, err := apiClient.ListRooms(ctx, propertyID)
	if err != nil {
		if errorReporter != nil {
			errorReporter.LogError(err, "cli.rooms")
		}
		return fmt.Errorf("listing rooms: %w", err)
	}

	if len(rooms) == 0 {
		cmd.Println("No rooms.")
		return nil
	}
	for _, room := range rooms {
		occupancy := "vacant"
		if room.Occupied {
			occupancy = "occupied"
		}
		cmd.Printf("%s  #%s  %s  %.2f/mo  %s\n", room.ID, room.Number, room.Type, room.Rent, occupancy)
	}
	return nil
}

func runTenants(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	if _, err := requireAuth(ctx); err != nil {
		return err
	}

	tenants, err := apiClient.ListTenants(ctx)
	if err != nil {
		if errorReporter != nil {
			errorReporter.LogError(err, "cli.tenants")
		}
		return fmt.Errorf("listing tenants: %w", err)
	}

	if len(tenants) == 0 {
		cmd.Println("No tenants.")
		return nil
	}
	for _, tenant := range tenants {
		notice := ""
		if tenant.NoticeGiven {
			notice = "  (notice given)"
		}
		cmd.Printf("%s  %s %s  room %s%s\n", tenant.ID, tenant.FirstName, tenant.LastName, tenant.RoomID, notice)
	}
	return nil
}

func runTickets(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	if _, err := requireAuth(ctx); err != nil {
		return err
	}

	tickets, err := apiClient.ListTickets(ctx)
	if err != nil {
		if errorReporter != nil {
			errorReporter.LogError(err, "cli.tickets")
		}
		return fmt.Errorf("listing tickets: %w", err)
	}

	if len(tickets) == 0 {
		cmd.Println("No tickets.")
		return nil
	}
	for _, ticket := range tickets {
		cmd.Printf("%s  [%s]  %s\n", ticket.ID, ticket.Status, ticket.Title)
	}
	return nil
}
