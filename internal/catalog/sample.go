package catalog

import "time"

// Sample data: 30 venues across greater London, 15 artists and 20 events.

var sampleVenues = []Venue{
	{ID: 1, Name: "Camden House", Lat: 51.52134267984579, Lon: -0.17529892447773332},
	{ID: 2, Name: "Stratford Pub", Lat: 51.484902931836906, Lon: -0.15547892618511772},
	{ID: 3, Name: "Chelsea Bar", Lat: 51.5310471214164, Lon: -0.11013005125770886},
	{ID: 4, Name: "Battersea Lounge", Lat: 51.54661795677048, Lon: -0.1691061167370584},
	{ID: 5, Name: "Wimbledon Venue", Lat: 51.499592181968524, Lon: -0.17482027805619296},
	{ID: 6, Name: "Bethnal Green Hall", Lat: 51.47926379748036, Lon: -0.12726447118966377},
	{ID: 7, Name: "Ealing Club", Lat: 51.460053596968386, Lon: -0.15791623493133516},
	{ID: 8, Name: "Deptford Stage", Lat: 51.52238844377795, Lon: -0.12330585193967833},
	{ID: 9, Name: "Soho Spot", Lat: 51.47944406220407, Lon: -0.11887343161240913},
	{ID: 10, Name: "Paddington Cafe", Lat: 51.53834304566778, Lon: -0.1771501240321939},
	{ID: 11, Name: "Peckham House", Lat: 51.537981925183274, Lon: -0.10798606050117732},
	{ID: 12, Name: "Kensington Pub", Lat: 51.491425051651795, Lon: -0.16225205001882184},
	{ID: 13, Name: "Notting Hill Bar", Lat: 51.55312130722068, Lon: -0.14414054548873734},
	{ID: 14, Name: "Covent Garden Lounge", Lat: 51.46667458433801, Lon: -0.1681283623166536},
	{ID: 15, Name: "Waterloo Venue", Lat: 51.542149436634745, Lon: -0.11742739686331088},
	{ID: 16, Name: "Shoreditch Hall", Lat: 51.53811282732744, Lon: -0.10482682133061821},
	{ID: 17, Name: "Lewisham Club", Lat: 51.511022809145466, Lon: -0.08048842360206293},
	{ID: 18, Name: "Dalston Stage", Lat: 51.495253437720834, Lon: -0.1225959368726773},
	{ID: 19, Name: "Fulham Spot", Lat: 51.5403404664253, Lon: -0.1159480247635754},
	{ID: 20, Name: "Finsbury Cafe", Lat: 51.543570690031075, Lon: -0.1200647854743238},
	{ID: 21, Name: "Clapham House", Lat: 51.52785718362149, Lon: -0.17321756163443378},
	{ID: 22, Name: "Westminster Pub", Lat: 51.48018982756515, Lon: -0.14886120363978927},
	{ID: 23, Name: "Brixton Bar", Lat: 51.46537919769236, Lon: -0.15452091136389698},
	{ID: 24, Name: "Whitechapel Lounge", Lat: 51.46750014294097, Lon: -0.1500026396889908},
	{ID: 25, Name: "Islington Venue", Lat: 51.52096844442644, Lon: -0.1413167821029916},
	{ID: 26, Name: "Hackney Hall", Lat: 51.494418096711684, Lon: -0.15684929692285124},
	{ID: 27, Name: "Southbank Club", Lat: 51.484097782204906, Lon: -0.0841345412287506},
	{ID: 28, Name: "Greenwich Stage", Lat: 51.52220353852466, Lon: -0.11688689943330118},
	{ID: 29, Name: "Hampstead Spot", Lat: 51.474513864819805, Lon: -0.10488732020496508},
	{ID: 30, Name: "Hammersmith Cafe", Lat: 51.47374024937619, Lon: -0.13985445582423522},
}

var sampleArtists = []Artist{
	{ID: 1, Name: "Electric Beats"},
	{ID: 2, Name: "Moonlight Riders"},
	{ID: 3, Name: "Midnight Jams"},
	{ID: 4, Name: "Neon Strings"},
	{ID: 5, Name: "Vintage Vibes"},
	{ID: 6, Name: "Dynamic Sounds"},
	{ID: 7, Name: "Groovy Dreams"},
	{ID: 8, Name: "Sunny Movers"},
	{ID: 9, Name: "Cosmic Notes"},
	{ID: 10, Name: "Wandering Soul"},
	{ID: 11, Name: "Velvet Echoes"},
	{ID: 12, Name: "Golden Grooves"},
	{ID: 13, Name: "Rustic Sparks"},
	{ID: 14, Name: "Bluesy Harmony"},
	{ID: 15, Name: "Retro Rhythm"},
}

var sampleEvents = []Event{
	{ID: 1, Title: "Live Gig 1", Date: mustDate("2025-11-09"), VenueID: 3, ArtistID: 2, Price: 0, Genre: "Hip Hop"},
	{ID: 2, Title: "Live Gig 2", Date: mustDate("2025-09-25"), VenueID: 9, ArtistID: 10, Price: 0, Genre: "Folk"},
	{ID: 3, Title: "Live Gig 3", Date: mustDate("2025-09-17"), VenueID: 22, ArtistID: 3, Price: 10, Genre: "Electronic"},
	{ID: 4, Title: "Live Gig 4", Date: mustDate("2025-10-10"), VenueID: 12, ArtistID: 9, Price: 10, Genre: "Folk"},
	{ID: 5, Title: "Live Gig 5", Date: mustDate("2025-10-02"), VenueID: 28, ArtistID: 1, Price: 0, Genre: "Blues"},
	{ID: 6, Title: "Live Gig 6", Date: mustDate("2025-11-13"), VenueID: 30, ArtistID: 7, Price: 10, Genre: "Folk"},
	{ID: 7, Title: "Live Gig 7", Date: mustDate("2025-09-25"), VenueID: 6, ArtistID: 4, Price: 0, Genre: "Rock"},
	{ID: 8, Title: "Live Gig 8", Date: mustDate("2025-09-26"), VenueID: 6, ArtistID: 3, Price: 15, Genre: "Folk"},
	{ID: 9, Title: "Live Gig 9", Date: mustDate("2025-10-08"), VenueID: 22, ArtistID: 9, Price: 0, Genre: "Blues"},
	{ID: 10, Title: "Live Gig 10", Date: mustDate("2025-11-04"), VenueID: 24, ArtistID: 9, Price: 0, Genre: "Hip Hop"},
	{ID: 11, Title: "Live Gig 11", Date: mustDate("2025-10-22"), VenueID: 12, ArtistID: 14, Price: 10, Genre: "Jazz"},
	{ID: 12, Title: "Live Gig 12", Date: mustDate("2025-11-02"), VenueID: 23, ArtistID: 12, Price: 10, Genre: "Electronic"},
	{ID: 13, Title: "Live Gig 13", Date: mustDate("2025-10-18"), VenueID: 16, ArtistID: 5, Price: 10, Genre: "Folk"},
	{ID: 14, Title: "Live Gig 14", Date: mustDate("2025-10-17"), VenueID: 22, ArtistID: 15, Price: 10, Genre: "Blues"},
	{ID: 15, Title: "Live Gig 15", Date: mustDate("2025-10-07"), VenueID: 24, ArtistID: 15, Price: 15, Genre: "Electronic"},
	{ID: 16, Title: "Live Gig 16", Date: mustDate("2025-10-14"), VenueID: 22, ArtistID: 4, Price: 0, Genre: "Hip Hop"},
	{ID: 17, Title: "Live Gig 17", Date: mustDate("2025-10-29"), VenueID: 29, ArtistID: 15, Price: 15, Genre: "Pop"},
	{ID: 18, Title: "Live Gig 18", Date: mustDate("2025-11-03"), VenueID: 10, ArtistID: 5, Price: 20, Genre: "Hip Hop"},
	{ID: 19, Title: "Live Gig 19", Date: mustDate("2025-10-17"), VenueID: 17, ArtistID: 9, Price: 20, Genre: "Folk"},
	{ID: 20, Title: "Live Gig 20", Date: mustDate("2025-10-22"), VenueID: 10, ArtistID: 12, Price: 0, Genre: "Blues"},
}

func mustDate(s string) time.Time {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Sample builds the builtin London catalog.
func Sample() (*Catalog, error) {
	return New(sampleVenues, sampleArtists, sampleEvents)
}
