package main

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/ayusman/mudra/internal/app"
	"github.com/ayusman/mudra/internal/server"
	"github.com/ayusman/mudra/internal/store"
	"github.com/ayusman/mudra/internal/tray"
)

const serverAddr = ":8080"

func main() {
	fmt.Println("Mudra - Gesture Mouse")

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("Failed to get home directory: %v", err)
	}

	dataDir := filepath.Join(homeDir, ".mudra")
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	st, err := store.New(filepath.Join(dataDir, "mudra.db"))
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer st.Close()

	a := app.New(app.LoadConfig(st))

	srv := server.New(server.Config{
		StaticDir: findWebDir(),
		Store:     st,
		Camera:    a.Camera(),
	})

	t := tray.New()

	a.OnFrame(func(fs app.FrameState) {
		srv.State().Publish(server.StateMessage{
			Gesture:  fs.Gesture,
			Hand:     fs.Hand,
			Hands:    fs.Hands,
			Enabled:  fs.Enabled,
			Dragging: fs.Dragging,
		})
		t.SetLastGesture(fs.Gesture)
	})

	t.OnToggle(func(enabled bool) {
		a.SetEnabled(enabled)
		st.Settings().Set(store.SettingEnabled, strconv.FormatBool(enabled))
	})
	t.OnSettings(func() {
		openBrowser("http://localhost" + serverAddr)
	})
	t.OnQuit(func() {
		a.Stop()
	})

	enabled := true
	if v, err := st.Settings().Get(store.SettingEnabled); err == nil {
		if b, err := strconv.ParseBool(v); err == nil {
			enabled = b
		}
	}
	a.SetEnabled(enabled)
	t.SetEnabled(enabled)

	if err := a.Start(); err != nil {
		log.Printf("Failed to start recognition pipeline: %v", err)
	}

	go func() {
		log.Printf("Starting server on %s", serverAddr)
		if err := srv.ListenAndServe(serverAddr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Blocks until Quit is chosen from the tray menu.
	t.Run()
}

// openBrowser opens the settings UI in the default browser.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		log.Printf("Failed to open browser: %v", err)
	}
}

// findWebDir searches for the web directory in common locations.
// Returns the first existing directory or empty string if none found.
func findWebDir() string {
	relativePaths := []string{"web", "../web", "../../web"}
	for _, p := range relativePaths {
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			absPath, err := filepath.Abs(p)
			if err == nil {
				return absPath
			}
			return p
		}
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	homeWebDir := filepath.Join(homeDir, ".mudra", "web")
	if info, err := os.Stat(homeWebDir); err == nil && info.IsDir() {
		return homeWebDir
	}

	return ""
}
