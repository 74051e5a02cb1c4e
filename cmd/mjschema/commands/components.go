/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: components.go
Description: List-components command for the MJSchema generator. Prints the
built-in registry as a numbered table with packages, attribute counts, and
allowed children.
*/

package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kleascm/mjschema/pkg/registry"
)

// ListComponents lists all registered components and their capabilities
func ListComponents(cmd *cobra.Command, args []string) {
	fmt.Println("📦 MJSchema - Registered Components")
	fmt.Println("===================================")
	fmt.Println()

	reg := registry.New()

	for i, def := range reg.Components() {
		fmt.Printf("%d. %s\n", i+1, def.Name)
		fmt.Printf("   Package: %s\n", def.Package)
		fmt.Printf("   Attributes: %d\n", len(def.Attributes))
		if kids, ok := reg.Children(def.Name); ok {
			fmt.Printf("   Children: %s\n", strings.Join(kids, ", "))
		}
		fmt.Println()
	}

	fmt.Printf("✨ %d components registered\n", reg.Len())
	fmt.Println("   Use 'mjschema generate' to build the schema artifacts")
}
