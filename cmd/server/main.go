package main

import (
	"github.com/vegansindhu/admin-upload/internal/bootstrap"
)

func main() {
	bootstrap.Run()
}
