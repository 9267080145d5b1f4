package main

// @title           Attribute Browser API
// @version         1.0
// @description     Read-only search and detail views over a static attribute document.
// @BasePath        /

func main() {
	Execute()
}
