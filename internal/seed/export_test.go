package seed

// Fleet exposes the seeded fleet to the external test package.
var Fleet = fleet
