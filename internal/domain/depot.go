package domain

// Depot is the home base every technician route starts from and returns to.
type Depot struct {
	Name        string
	Address     string
	Coordinates Coordinates
}

// DefaultDepot is compiled in; routes are always anchored here.
var DefaultDepot = Depot{
	Name:        "Main depot",
	Address:     "Mantes-la-Jolie, 78200, France",
	Coordinates: Coordinates{Lat: 48.9733, Lon: 1.7075},
}
