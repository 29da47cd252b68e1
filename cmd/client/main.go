package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/mflstudio/concours/pkg/client"
	"github.com/mflstudio/concours/pkg/log"
	"github.com/mflstudio/concours/pkg/messages"
	"github.com/mflstudio/concours/pkg/version"
)

func main() {
	serverURL := flag.String("server", "ws://localhost:8080/ws", "WebSocket endpoint of the game server")
	name := flag.String("name", "", "Roster name to join as on connect")
	logLevel := flag.String("log-level", "warn", "Log level")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}
	log.SetDefaultLogger(log.New(os.Stderr, "client", parsedLogLevel))
	log.Info("Starting client version %s", version.Get())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gameStateChan := make(chan *messages.GameStateUpdate, 16)
	ackChan := make(chan string, 16)
	c := client.NewClient(client.NewClientOptions{
		ServerURL:     *serverURL,
		GameStateChan: gameStateChan,
		AckChan:       ackChan,
	})
	if err := c.Connect(ctx); err != nil {
		fmt.Println("Error connecting to server:", err)
		os.Exit(1)
	}
	defer c.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		if err := c.HandleMessages(ctx); err != nil {
			fmt.Println("Error:", err)
		}
		fmt.Println("Server disconnected.")
		cancel()
	}()

	var (
		lock      sync.Mutex
		lastState *messages.GameStateUpdate
		pings     = make(map[string]time.Time)
	)

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case s := <-gameStateChan:
				lock.Lock()
				lastState = s
				lock.Unlock()
				printGameState(os.Stdout, s)
			case ack := <-ackChan:
				lock.Lock()
				sent, ok := pings[ack]
				delete(pings, ack)
				lock.Unlock()
				if ok {
					fmt.Printf("pong in %s\n", time.Since(sent).Round(time.Microsecond))
				}
			}
		}
	}()

	if *name != "" {
		if err := c.SendCommand(ctx, messages.JoinCommand{Name: *name}); err != nil {
			fmt.Println("Error joining:", err)
		}
	}

	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		pingID := 0
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			switch line {
			case "":
				continue
			case "exit":
				cancel()
				return
			case "grid":
				lock.Lock()
				s := lastState
				lock.Unlock()
				if s == nil {
					fmt.Println("no game state yet")
					continue
				}
				printGrid(os.Stdout, s)
				continue
			case "ping":
				pingID++
				ack := strconv.Itoa(pingID)
				lock.Lock()
				pings[ack] = time.Now()
				lock.Unlock()
				if err := c.Ping(ctx, ack); err != nil {
					fmt.Println("Error sending ping:", err)
				}
				continue
			}

			command, err := parseCommand(line)
			if err != nil {
				fmt.Println(err)
				continue
			}
			if err := c.SendCommand(ctx, command); err != nil {
				fmt.Println("Error sending command:", err)
			}
		}
		cancel()
	}()

	<-ctx.Done()
	fmt.Println("Exiting client.")
}
