// Package deliveryperson provides the DeliveryPerson aggregate: the profile a
// delivery person keeps with the marketplace. The profile's city is the
// default area for discovering unassigned orders, and its name and mobile
// number are shown to sellers next to pending delivery requests.
//
// Business rules:
//   - The aggregate ID is the delivery person's authenticated subject ID
//   - Name, mobile number and city are required
//   - Unavailable delivery persons cannot submit new delivery requests
package deliveryperson
