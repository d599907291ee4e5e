package cmd

type Config struct {
	HTTPPort            string
	DBHost              string
	DBPort              string
	DBUser              string
	DBPassword          string
	DBName              string
	DBSslMode           string
	FleetServiceURL     string
	DriverServiceURL    string
	RegistryTimeout     string
	DefaultVehicleType  string
	DefaultLicenseClass string
}
