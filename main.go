package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"findthespy/internal/local"
	"findthespy/internal/words"
)

// Pass-and-play mode: one device, handed around the table. The multi-device
// server lives in cmd/server.
func main() {
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("=== Find the Spy (pass-and-play) ===")
	fmt.Println("Enter player names, one per line. Empty line to finish.")

	var names []string
	for {
		fmt.Printf("Player %d> ", len(names)+1)
		line, _ := reader.ReadString('\n')
		line = strings.TrimSpace(line)
		if line == "" {
			break
		}
		names = append(names, line)
	}

	eng := local.NewEngine(words.Default, local.Settings{
		TimerDuration: 8 * time.Minute,
		IncludeRoles:  true,
	})
	if err := eng.SetPlayers(names); err != nil {
		fmt.Println("setup failed:", err)
		return
	}
	if err := eng.Start(); err != nil {
		fmt.Println("cannot start:", err)
		return
	}

	// Reveal: each player looks at their card in turn.
	for eng.Phase() == local.PhaseReveal {
		p, _ := eng.CurrentReveal()
		fmt.Printf("\nPass the device to %s and press enter.", p.Name)
		reader.ReadString('\n')
		if p.IsSpy {
			fmt.Println("You are the SPY. Figure out the location without getting caught.")
		} else {
			fmt.Printf("Location: %s\n", eng.SecretItem().Name("en"))
			if p.Role != "" {
				fmt.Printf("Your role: %s\n", p.Role)
			}
		}
		fmt.Print("Press enter to hide.")
		reader.ReadString('\n')
		eng.NextReveal()
	}

	deadline, _ := eng.Deadline()
	fmt.Printf("\nDiscussion started. Suggested end: %s\n", deadline.Format("15:04"))
	fmt.Print("Press enter when the table is ready to vote.")
	reader.ReadString('\n')
	eng.EndGame()

	fmt.Println("\nWho is the spy?")
	players := eng.Players()
	for i, p := range players {
		fmt.Printf("  %d. %s\n", i+1, p.Name)
	}
	fmt.Println("  0. The spy wants to guess the location instead")

	for eng.Phase() == local.PhaseVoting {
		fmt.Print("> ")
		line, _ := reader.ReadString('\n')
		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || choice < 0 || choice > len(players) {
			fmt.Println("Pick a number from the list.")
			continue
		}
		if choice == 0 {
			fmt.Print("Spy, name the location: ")
			guess, _ := reader.ReadString('\n')
			eng.GuessItem(strings.TrimSpace(guess))
		} else {
			eng.VoteForSpy(players[choice-1].ID)
		}
	}

	out, _ := eng.Outcome()
	fmt.Printf("\nThe spy was %s.\n", out.SpyName)
	switch {
	case out.GuessedItem != "" && out.SpyWins:
		fmt.Printf("Spy wins! %q was the location.\n", eng.SecretItem().Name("en"))
	case out.GuessedItem != "":
		fmt.Printf("Spy loses! The location was %s, not %q.\n", eng.SecretItem().Name("en"), out.GuessedItem)
	case out.SpyWins:
		fmt.Printf("Spy wins! %s was not the spy.\n", out.VotedName)
	default:
		fmt.Println("The table wins! The spy was caught.")
	}
}
