package main

// @title           EcoShare API
// @version         1.0
// @description     Donation coordination platform connecting donors, NGOs and delivery volunteers
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token
func main() {
	Execute()
}
