// Command client is a small command-line front-end for the employee REST API.
//
// Usage:
//
//	client -server http://localhost:8080 list
//	client create -name "John Doe" -role Developer
//	client get -id 1
//	client replace -id 1 -name "John Doe" -role Manager
//	client delete -id 1
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/employee-service/internal/adapter"
	"github.com/MKhiriev/employee-service/internal/logger"
	"github.com/MKhiriev/employee-service/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("employee-client")

	serverURL := flag.String("server", "http://localhost:8080", "base URL of the employee service")
	timeout := flag.Duration("timeout", 15*time.Second, "request timeout")
	id := flag.Int64("id", 0, "employee id (get/replace/delete)")
	name := flag.String("name", "", "employee name (create/replace)")
	role := flag.String("role", "", "employee role (create/replace)")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "expected a command: list, create, get, replace, delete")
		os.Exit(2)
	}
	command := flag.Arg(0)

	client := adapter.NewHTTPEmployeeClient(adapter.HTTPClientConfig{
		BaseURL: *serverURL,
		Timeout: *timeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	switch command {
	case "list":
		employees, err := client.List(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("list employees")
		}
		for _, employee := range employees {
			printEmployee(employee)
		}

	case "create":
		employee, err := client.Create(ctx, models.EmployeeDraft{Name: *name, Role: *role})
		if err != nil {
			log.Fatal().Err(err).Msg("create employee")
		}
		printEmployee(employee)

	case "get":
		employee, err := client.Get(ctx, *id)
		if err != nil {
			log.Fatal().Err(err).Msg("get employee")
		}
		printEmployee(employee)

	case "replace":
		employee, created, err := client.Replace(ctx, *id, models.EmployeeDraft{Name: *name, Role: *role})
		if err != nil {
			log.Fatal().Err(err).Msg("replace employee")
		}
		if created {
			fmt.Println("created:")
		}
		printEmployee(employee)

	case "delete":
		if err := client.Delete(ctx, *id); err != nil {
			log.Fatal().Err(err).Msg("delete employee")
		}
		fmt.Println("deleted")

	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", command)
		os.Exit(2)
	}
}

func printEmployee(employee models.Employee) {
	fmt.Printf("%d\t%s\t%s\n", employee.ID, employee.Name, employee.Role)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
