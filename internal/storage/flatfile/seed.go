package flatfile

// seeds is the first-run content for each collection. Bookings start
// empty (header only).
var seeds = map[string][]Record{
	CollectionUsers: {
		{"id": "1", "name": "Alice Banda", "department": "Engineering", "role": "individual", "email": "alice.banda@example.com"},
		{"id": "2", "name": "Brian Phiri", "department": "Operations", "role": "individual", "email": "brian.phiri@example.com"},
		{"id": "3", "name": "Engineering Desk", "department": "Engineering", "role": "dept", "email": "engineering@example.com"},
		{"id": "4", "name": "Operations Desk", "department": "Operations", "role": "dept", "email": "operations@example.com"},
	},
	CollectionResources: {
		{"id": "boardroom", "name": "Boardroom", "type": "room"},
		{"id": "van-1", "name": "Pool Van", "type": "vehicle"},
	},
	CollectionAdmins: {
		{"username": "admin", "password": "admin123", "name": "Administrator"},
	},
	CollectionBookings: nil,
}
