package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/example/task-manager/modules/api"
	"github.com/example/task-manager/modules/task"
	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"
)

const shutdownTimeout = 30 * time.Second

func main() {
	log.Println("=== Task Manager Backend ===")

	// Create mono application
	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(shutdownTimeout),
		mono.WithLogLevel(mono.LogLevelInfo),
		mono.WithLogFormat(mono.LogFormatText),
	)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	// Register modules with the framework
	// Order: independent modules first, then dependent modules
	app.Register(task.NewModule()) // Provides task services
	app.Register(api.NewModule())  // Depends on task module

	// Start application
	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	printStartupInfo()

	// Graceful shutdown
	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				log.Println("Graceful shutdown initiated...")
				return app.Stop(ctx)
			},
		},
	)

	exitCode := <-wait
	log.Printf("Application exited with code: %d", exitCode)
	os.Exit(exitCode)
}

func printStartupInfo() {
	log.Println("")
	log.Println("Application started successfully!")
	log.Println("")
	log.Println("Every mutation is recorded as an immutable audit log entry,")
	log.Println("written in the same transaction as the task change.")
	log.Println("")
	log.Println("REST API Endpoints (http://localhost:3000):")
	log.Println("  GET    /health                    - Database reachability probe")
	log.Println("  GET    /api/v1/tasks              - List tasks, newest first")
	log.Println("  POST   /api/v1/tasks              - Create a task")
	log.Println("  GET    /api/v1/tasks/stats        - Aggregate statistics")
	log.Println("  GET    /api/v1/tasks/:id          - Get a task with its audit logs")
	log.Println("  PATCH  /api/v1/tasks/:id          - Update task fields")
	log.Println("  DELETE /api/v1/tasks/:id          - Delete a task and its logs")
	log.Println("  POST   /api/v1/tasks/:id/toggle   - Flip completion state")
	log.Println("")
	log.Println("Services are also callable directly via NATS request-reply:")
	log.Println("  nats request services.task.create '{\"title\":\"Buy milk\"}'")
	log.Println("")
	log.Println("Press Ctrl+C to shutdown gracefully")
}
