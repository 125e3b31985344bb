package main

import (
	"github.com/Wilsonthoma/Ecommerce-sub002/cmd"
)

func main() {
	cmd.Execute()
}
