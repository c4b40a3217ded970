// Command roomctl is a terminal front end for the room service. It keeps a
// local mirror of the rooms through roomclient and refreshes it in the
// background.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/nekogravitycat/hotel-room-inventory/internal/logger"
	"github.com/nekogravitycat/hotel-room-inventory/internal/roomclient"
)

const usage = `commands:
  list                                   reload rooms from the server
  find <term>                            filter the local list (blank clears)
  add <number> <type> <price> <capacity> <status>
  edit <id>                              load a room into the form
  save <number> <type> <price> <capacity> <status>
  reset                                  leave edit mode
  delete <id>
  help | quit`

func main() {
	apiURL := flag.String("api", envOr("ROOM_API_URL", "http://localhost:3000/api"), "room service API root")
	refresh := flag.Duration("refresh", roomclient.DefaultRefreshInterval, "auto refresh interval")
	flag.Parse()

	zl, err := logger.New(envOr("LOG_LEVEL", "warn"), "console", "roomctl")
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	in := bufio.NewScanner(os.Stdin)
	term := &terminal{in: in}
	ctrl := roomclient.NewController(roomclient.NewAPI(*apiURL, zl), term, term, zl)

	_ = ctrl.Load(ctx)
	go ctrl.AutoRefresh(ctx, *refresh)

	fmt.Println(usage)
	for {
		fmt.Print("> ")
		if !in.Scan() {
			return
		}
		if quit := run(ctx, ctrl, strings.Fields(in.Text())); quit {
			return
		}
	}
}

func run(ctx context.Context, ctrl *roomclient.Controller, args []string) bool {
	if len(args) == 0 {
		return false
	}

	switch args[0] {
	case "quit", "exit":
		return true
	case "help":
		fmt.Println(usage)
	case "list":
		_ = ctrl.Load(ctx)
	case "find":
		ctrl.Filter(strings.Join(args[1:], " "))
	case "add", "save":
		form, err := parseForm(args[1:])
		if err != nil {
			fmt.Println(err)
			return false
		}
		if args[0] == "add" {
			_ = ctrl.SubmitCreate(ctx, form)
		} else if err := ctrl.SubmitUpdate(ctx, form); errors.Is(err, roomclient.ErrNotEditing) {
			fmt.Println("use edit <id> first")
		}
	case "edit":
		id, err := parseID(args)
		if err != nil {
			fmt.Println(err)
			return false
		}
		form, err := ctrl.BeginEdit(id)
		if err != nil {
			fmt.Println(err)
			return false
		}
		fmt.Printf("editing %s %s %d %d %s\n", form.RoomNumber, form.RoomType, form.Price, form.Capacity, form.Status)
	case "reset":
		ctrl.Reset()
	case "delete":
		id, err := parseID(args)
		if err != nil {
			fmt.Println(err)
			return false
		}
		if err := ctrl.Delete(ctx, id); errors.Is(err, roomclient.ErrUnknownRoom) {
			fmt.Println(err)
		}
	default:
		fmt.Printf("unknown command %q\n", args[0])
	}
	return false
}

func parseID(args []string) (int64, error) {
	if len(args) != 2 {
		return 0, fmt.Errorf("usage: %s <id>", args[0])
	}
	id, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", args[1])
	}
	return id, nil
}

// parseForm reads number, type, price, capacity and status. Unparsable
// numbers become 0 so the form validation reports them.
func parseForm(args []string) (roomclient.Form, error) {
	if len(args) != 5 {
		return roomclient.Form{}, errors.New("expected <number> <type> <price> <capacity> <status>")
	}
	price, _ := strconv.ParseInt(args[2], 10, 64)
	capacity, _ := strconv.Atoi(args[3])
	return roomclient.Form{
		RoomNumber: args[0],
		RoomType:   args[1],
		Price:      price,
		Capacity:   capacity,
		Status:     args[4],
	}, nil
}

// terminal renders rooms as a table and asks confirmations on stdin.
type terminal struct {
	in *bufio.Scanner
}

func (t *terminal) Render(v roomclient.View) {
	fmt.Printf("\n%-6s %-8s %-10s %12s %8s  %s\n", "ID", "NUMBER", "TYPE", "PRICE (VND)", "GUESTS", "STATUS")
	if len(v.Rooms) == 0 {
		fmt.Println("no rooms found")
	}
	for _, r := range v.Rooms {
		fmt.Printf("%-6d %-8s %-10s %12d %8d  %s\n", r.ID, r.RoomNumber, r.RoomType, r.Price, r.Capacity, r.Status)
	}
	fmt.Printf("available: %d  occupied: %d  maintenance: %d  (%s)\n",
		v.Stats.Available, v.Stats.Occupied, v.Stats.Maintenance, v.Mode)
}

func (t *terminal) ShowMessage(kind roomclient.MessageKind, text string) {
	fmt.Printf("[%s %s] %s\n", time.Now().Format("15:04:05"), kind, text)
}

func (t *terminal) Confirm(prompt string) bool {
	fmt.Print(prompt + " [y/N] ")
	if !t.in.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(t.in.Text()))
	return answer == "y" || answer == "yes"
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
