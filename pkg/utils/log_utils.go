package utils

import "fmt"

// PrintMessage prints a message to the console.
func PrintMessage(message string) {
	fmt.Println(message)
}
