package main

import (
	"context"

	"github.com/SAP-F-2025/lingua-service/cmd"
)

func main() {
	cmd.Execute(context.Background())
}
