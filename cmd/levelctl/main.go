// levelctl applies database migrations and seeds the preset habit catalogue.
package main

func main() {
	Execute()
}
