package models

// SpendingSeed 内置初始消费数据条目
type SpendingSeed struct {
	Category string
	Date     string
	Amount   float64
}

// IncomeSeed 内置初始收入数据条目
type IncomeSeed struct {
	Month  string
	Income float64
	Saved  float64
	Home   float64
}

// SpendingSeedData 返回内置的历史消费数据（仅在两个账本均为空时导入）
func SpendingSeedData() []SpendingSeed {
	return []SpendingSeed{
		{Category: "Luminar", Date: "2025-03-27", Amount: 110424},
		{Category: "Internet", Date: "2025-03-27", Amount: 7000},
		{Category: "iTunes", Date: "2025-03-27", Amount: 7250},
		{Category: "ChatGPT", Date: "2025-03-29", Amount: 10010},
		{Category: "Internet", Date: "2025-04-02", Amount: 5000},
		{Category: "Taxi", Date: "2025-04-06", Amount: 5000},
		{Category: "Food", Date: "2025-04-06", Amount: 11500},
		{Category: "Taxi", Date: "2025-04-07", Amount: 10000},
		{Category: "Food", Date: "2025-04-07", Amount: 5250},
		{Category: "Barber", Date: "2025-04-07", Amount: 5000},
		{Category: "Taxi", Date: "2025-04-08", Amount: 17250},
		{Category: "College Project", Date: "2025-04-08", Amount: 60000},
		{Category: "Taxi", Date: "2025-04-09", Amount: 5000},
		{Category: "Food", Date: "2025-04-09", Amount: 6750},
		{Category: "Taxi", Date: "2025-04-10", Amount: 14416},
		{Category: "Food", Date: "2025-04-10", Amount: 21275},
		{Category: "Food", Date: "2025-04-12", Amount: 10000},
		{Category: "Taxi", Date: "2025-04-13", Amount: 11871.55},
		{Category: "Food", Date: "2025-04-13", Amount: 8775},
		{Category: "Doctor", Date: "2025-04-13", Amount: 28750},
		{Category: "Taxi", Date: "2025-04-14", Amount: 79750},
		{Category: "Food", Date: "2025-04-14", Amount: 6500},
		{Category: "Food", Date: "2025-04-16", Amount: 6500},
		{Category: "Food", Date: "2025-04-17", Amount: 13625},
		{Category: "Spotify", Date: "2025-04-17", Amount: 4500},
		{Category: "Food", Date: "2025-04-18", Amount: 12000},
		{Category: "Food", Date: "2025-04-19", Amount: 16600},
		{Category: "365DataSci", Date: "2025-04-19", Amount: 29584.8},
		{Category: "Food", Date: "2025-04-20", Amount: 4655},
		{Category: "Food", Date: "2025-04-21", Amount: 3750},
		{Category: "Food", Date: "2025-04-23", Amount: 5500},
		{Category: "Food", Date: "2025-04-24", Amount: 4250},
		{Category: "Barber", Date: "2025-04-24", Amount: 10000},
		{Category: "Home", Date: "2025-04-25", Amount: 35000},
		{Category: "Food", Date: "2025-04-26", Amount: 18250},
		{Category: "Taxi", Date: "2025-04-27", Amount: 9037},
		{Category: "Food", Date: "2025-04-27", Amount: 3250},
		{Category: "With-Msto", Date: "2025-04-27", Amount: 25050},
		{Category: "Korek", Date: "2025-04-28", Amount: 1400},
		{Category: "Taxi", Date: "2025-04-28", Amount: 12576.36},
		{Category: "New Laptop", Date: "2025-04-28", Amount: 1501000},
		{Category: "Taxi", Date: "2025-04-30", Amount: 4079.82},
		{Category: "Food", Date: "2025-04-30", Amount: 3750},
		{Category: "Gaming", Date: "2025-05-01", Amount: 40102},
		{Category: "Taxi", Date: "2025-05-02", Amount: 9030},
		{Category: "Taxi", Date: "2025-05-04", Amount: 7983},
		{Category: "Food", Date: "2025-05-04", Amount: 10250},
		{Category: "Food", Date: "2025-05-05", Amount: 6750},
		{Category: "Taxi", Date: "2025-05-06", Amount: 6139},
		{Category: "Taxi", Date: "2025-05-07", Amount: 1000},
		{Category: "Food", Date: "2025-05-07", Amount: 3000},
		{Category: "Food", Date: "2025-05-08", Amount: 5250},
		{Category: "Taxi", Date: "2025-05-10", Amount: 5000},
		{Category: "Food", Date: "2025-05-10", Amount: 5500},
		{Category: "Taxi", Date: "2025-05-12", Amount: 11500},
		{Category: "Food", Date: "2025-05-12", Amount: 3750},
		{Category: "Barber", Date: "2025-05-12", Amount: 5000},
		{Category: "Taxi", Date: "2025-05-13", Amount: 12500},
		{Category: "Food", Date: "2025-05-13", Amount: 2000},
		{Category: "College Poster", Date: "2025-05-13", Amount: 4000},
		{Category: "Taxi", Date: "2025-05-14", Amount: 13947},
		{Category: "Food", Date: "2025-05-14", Amount: 4000},
		{Category: "Taxi", Date: "2025-05-17", Amount: 16000},
		{Category: "Food", Date: "2025-05-17", Amount: 4000},
		{Category: "Laptop", Date: "2025-05-17", Amount: 115000},
		{Category: "Controller", Date: "2025-05-17", Amount: 35000},
		{Category: "Taxi", Date: "2025-05-18", Amount: 89750},
		{Category: "Food", Date: "2025-05-18", Amount: 29000},
		{Category: "Taxi", Date: "2025-05-19", Amount: 5000},
		{Category: "Food", Date: "2025-05-19", Amount: 5000},
		{Category: "Taxi", Date: "2025-05-20", Amount: 5000},
		{Category: "Taxi", Date: "2025-05-21", Amount: 10000},
		{Category: "Food", Date: "2025-05-21", Amount: 1250},
		{Category: "College Project", Date: "2025-05-21", Amount: 15750},
		{Category: "Food", Date: "2025-05-22", Amount: 4250},
		{Category: "Food", Date: "2025-05-25", Amount: 6250},
		{Category: "Taxi", Date: "2025-05-26", Amount: 6500},
		{Category: "Food", Date: "2025-05-26", Amount: 5000},
		{Category: "Food", Date: "2025-05-27", Amount: 5500},
		{Category: "With-Mattin", Date: "2025-05-27", Amount: 150150},
		{Category: "College Project", Date: "2025-05-27", Amount: 209209},
		{Category: "Food", Date: "2025-05-28", Amount: 5500},
		{Category: "Taxi", Date: "2025-05-29", Amount: 15000},
		{Category: "16GB RAM", Date: "2025-05-29", Amount: 73000},
		{Category: "Gaming", Date: "2025-05-30", Amount: 40040},
		{Category: "Taxi", Date: "2025-05-31", Amount: 12000},
		{Category: "Food", Date: "2025-05-31", Amount: 39169},
		{Category: "Bank Fees", Date: "2025-05-31", Amount: 1500},
		{Category: "Photo Print", Date: "2025-05-31", Amount: 19000},
		{Category: "Korek", Date: "2025-05-31", Amount: 10100},
		{Category: "Taxi", Date: "2025-06-01", Amount: 19000},
		{Category: "Food", Date: "2025-06-01", Amount: 10000},
		{Category: "Belt", Date: "2025-06-01", Amount: 30000},
		{Category: "Watch", Date: "2025-06-01", Amount: 40000},
		{Category: "Food", Date: "2025-06-02", Amount: 4500},
		{Category: "Taxi", Date: "2025-06-04", Amount: 7000},
		{Category: "Food", Date: "2025-06-04", Amount: 28018},
		{Category: "Controller", Date: "2025-06-04", Amount: 80000},
		{Category: "Wallet", Date: "2025-06-04", Amount: 4000},
		{Category: "Shoes", Date: "2025-06-04", Amount: 30000},
		{Category: "Food", Date: "2025-06-07", Amount: 2000},
		{Category: "Food", Date: "2025-06-08", Amount: 4000},
		{Category: "Taxi", Date: "2025-06-10", Amount: 23250},
		{Category: "Hospital (EIH)", Date: "2025-06-10", Amount: 106250},
		{Category: "Taxi", Date: "2025-06-11", Amount: 15250},
		{Category: "Food", Date: "2025-06-11", Amount: 10000},
		{Category: "Keyboard", Date: "2025-06-11", Amount: 30000},
		{Category: "Taxi", Date: "2025-06-12", Amount: 7500},
		{Category: "Food", Date: "2025-06-12", Amount: 6250},
		{Category: "Taxi", Date: "2025-06-15", Amount: 13250},
		{Category: "Food", Date: "2025-06-15", Amount: 4500},
		{Category: "Taxi", Date: "2025-06-16", Amount: 16029.78},
		{Category: "Food", Date: "2025-06-16", Amount: 7125},
		{Category: "Taxi", Date: "2025-06-17", Amount: 6810.82},
		{Category: "Taxi", Date: "2025-06-18", Amount: 3630.66},
		{Category: "Food", Date: "2025-06-18", Amount: 3750},
		{Category: "Taxi", Date: "2025-06-19", Amount: 15000},
		{Category: "Food", Date: "2025-06-19", Amount: 7362},
		{Category: "Food", Date: "2025-06-20", Amount: 10000},
		{Category: "Food", Date: "2025-06-22", Amount: 5500},
		{Category: "Taxi", Date: "2025-06-23", Amount: 5366.91},
		{Category: "Food", Date: "2025-06-24", Amount: 4000},
		{Category: "Fuel", Date: "2025-06-24", Amount: 10000},
		{Category: "Food", Date: "2025-06-26", Amount: 33750},
		{Category: "Fuel", Date: "2025-06-26", Amount: 10000},
		{Category: "Taxi", Date: "2025-06-27", Amount: 5500},
		{Category: "Taxi", Date: "2025-06-28", Amount: 5000},
		{Category: "Food", Date: "2025-06-28", Amount: 6175},
		{Category: "Food", Date: "2025-06-29", Amount: 6175},
		{Category: "Taxi", Date: "2025-06-30", Amount: 12660},
		{Category: "Food", Date: "2025-06-30", Amount: 3750},
		{Category: "Taxi", Date: "2025-07-01", Amount: 16523},
		{Category: "Food", Date: "2025-07-01", Amount: 16500},
		{Category: "Headset", Date: "2025-07-01", Amount: 115500},
		{Category: "Barber", Date: "2025-07-01", Amount: 5000},
		{Category: "Food", Date: "2025-07-03", Amount: 3750},
		{Category: "Internet", Date: "2025-07-03", Amount: 29500},
		{Category: "Food", Date: "2025-07-04", Amount: 5750},
		{Category: "Internet", Date: "2025-07-04", Amount: 40000},
		{Category: "Taxi", Date: "2025-07-06", Amount: 6750},
		{Category: "Taxi", Date: "2025-07-07", Amount: 4898},
		{Category: "Food", Date: "2025-07-07", Amount: 5750},
		{Category: "Gaming", Date: "2025-07-07", Amount: 67000},
		{Category: "Taxi", Date: "2025-07-08", Amount: 32357},
		{Category: "Car Fragrance", Date: "2025-07-08", Amount: 4500},
		{Category: "Barber", Date: "2025-07-08", Amount: 5000},
		{Category: "Taxi", Date: "2025-07-11", Amount: 16663},
		{Category: "Food", Date: "2025-07-11", Amount: 7600},
		{Category: "Taxi", Date: "2025-07-12", Amount: 7316},
		{Category: "Food", Date: "2025-07-12", Amount: 5937},
		{Category: "Taxi", Date: "2025-07-13", Amount: 12174},
		{Category: "Food", Date: "2025-07-13", Amount: 6500},
		{Category: "Taxi", Date: "2025-07-14", Amount: 12416},
		{Category: "Food", Date: "2025-07-14", Amount: 3750},
		{Category: "Taxi", Date: "2025-07-15", Amount: 10210},
		{Category: "Food", Date: "2025-07-15", Amount: 20000},
		{Category: "Gaming", Date: "2025-07-15", Amount: 7000},
		{Category: "Food", Date: "2025-07-18", Amount: 5500},
		{Category: "Food", Date: "2025-07-19", Amount: 5500},
		{Category: "Gaming", Date: "2025-07-19", Amount: 21447},
		{Category: "Card Swap", Date: "2025-07-19", Amount: 10000},
		{Category: "Taxi", Date: "2025-07-20", Amount: 14015},
		{Category: "Gaming", Date: "2025-07-20", Amount: 34573},
		{Category: "Taxi", Date: "2025-07-21", Amount: 13802},
		{Category: "Food", Date: "2025-07-21", Amount: 3750},
		{Category: "Taxi", Date: "2025-07-22", Amount: 12687},
		{Category: "Taxi", Date: "2025-07-23", Amount: 11681},
		{Category: "Food", Date: "2025-07-23", Amount: 6000},
		{Category: "Taxi", Date: "2025-07-24", Amount: 11000},
		{Category: "Gaming", Date: "2025-07-24", Amount: 7000},
		{Category: "Food", Date: "2025-07-25", Amount: 5700},
		{Category: "Food", Date: "2025-07-26", Amount: 2500},
		{Category: "Taxi", Date: "2025-07-27", Amount: 6822},
		{Category: "Food", Date: "2025-07-27", Amount: 11000},
		{Category: "Taxi", Date: "2025-07-29", Amount: 18427},
		{Category: "Taxi", Date: "2025-07-30", Amount: 11750},
		{Category: "Food", Date: "2025-07-30", Amount: 11410},
		{Category: "Food", Date: "2025-07-31", Amount: 7125},
		{Category: "TOEFL", Date: "2025-07-31", Amount: 100100},
		{Category: "Shoe", Date: "2025-07-31", Amount: 170750},
		{Category: "Food", Date: "2025-08-01", Amount: 11044},
		{Category: "Fuel", Date: "2025-08-01", Amount: 15000},
		{Category: "Book", Date: "2025-08-01", Amount: 64250},
		{Category: "Taxi", Date: "2025-08-02", Amount: 15000},
		{Category: "Food", Date: "2025-08-02", Amount: 1500},
		{Category: "Korek", Date: "2025-08-04", Amount: 25000},
		{Category: "Fuel", Date: "2025-08-05", Amount: 8000},
		{Category: "TOEFL", Date: "2025-08-06", Amount: 21500},
		{Category: "Taxi", Date: "2025-08-07", Amount: 12703},
		{Category: "Food", Date: "2025-08-07", Amount: 5225},
		{Category: "Taxi", Date: "2025-08-08", Amount: 8853},
		{Category: "Taxi", Date: "2025-08-09", Amount: 15000},
		{Category: "Food", Date: "2025-08-09", Amount: 6412},
		{Category: "Internet", Date: "2025-08-09", Amount: 2400},
		{Category: "Food", Date: "2025-08-12", Amount: 5700},
		{Category: "FLUX.1", Date: "2025-08-12", Amount: 13755},
		{Category: "Food", Date: "2025-08-13", Amount: 12000},
		{Category: "HONOR 400", Date: "2025-08-13", Amount: 482000},
		{Category: "Food", Date: "2025-08-14", Amount: 6000},
		{Category: "Fuel", Date: "2025-08-14", Amount: 20000},
		{Category: "Food", Date: "2025-08-15", Amount: 5937},
		{Category: "Book", Date: "2025-08-15", Amount: 2000},
		{Category: "Food", Date: "2025-08-17", Amount: 13000},
		{Category: "Car Care", Date: "2025-08-18", Amount: 10000},
		{Category: "Food", Date: "2025-08-19", Amount: 6412},
		{Category: "Car Care", Date: "2025-08-20", Amount: 41000},
		{Category: "Food", Date: "2025-08-20", Amount: 5500},
		{Category: "Food", Date: "2025-08-21", Amount: 5875},
		{Category: "Barber", Date: "2025-08-21", Amount: 2000},
		{Category: "Food", Date: "2025-08-22", Amount: 6887.5},
		{Category: "Food", Date: "2025-08-25", Amount: 17500},
		{Category: "Fuel", Date: "2025-08-27", Amount: 25000},
		{Category: "Food", Date: "2025-08-29", Amount: 6237},
		{Category: "Food", Date: "2025-08-30", Amount: 11277.25},
		{Category: "Fuel", Date: "2025-08-30", Amount: 25000},
		{Category: "Food", Date: "2025-08-31", Amount: 22750},
		{Category: "Garage", Date: "2025-08-31", Amount: 2000},
		{Category: "Food", Date: "2025-09-01", Amount: 2000},
		{Category: "Garage", Date: "2025-09-01", Amount: 2000},
		{Category: "Food", Date: "2025-09-03", Amount: 10391},
		{Category: "Car Wash", Date: "2025-09-04", Amount: 6000},
		{Category: "Fuel", Date: "2025-09-04", Amount: 10000},
		{Category: "Internet", Date: "2025-09-04", Amount: 40400},
		{Category: "Food", Date: "2025-09-06", Amount: 3500},
		{Category: "Fuel", Date: "2025-09-08", Amount: 25000},
		{Category: "Food", Date: "2025-09-09", Amount: 5500},
		{Category: "Food", Date: "2025-09-11", Amount: 5000},
		{Category: "Barber", Date: "2025-09-12", Amount: 15000},
		{Category: "Food", Date: "2025-09-13", Amount: 16000},
		{Category: "Food", Date: "2025-09-16", Amount: 5750},
		{Category: "Food", Date: "2025-09-17", Amount: 4569},
		{Category: "Food", Date: "2025-09-18", Amount: 4500},
		{Category: "Barber", Date: "2025-09-19", Amount: 10000},
		{Category: "Food", Date: "2025-09-20", Amount: 7000},
		{Category: "Food", Date: "2025-09-21", Amount: 6412},
		{Category: "Food", Date: "2025-09-22", Amount: 6412},
		{Category: "Food", Date: "2025-09-25", Amount: 13512},
		{Category: "Food", Date: "2025-09-26", Amount: 4500},
		{Category: "Fuel", Date: "2025-09-26", Amount: 25000},
		{Category: "Car Care", Date: "2025-09-26", Amount: 9000},
		{Category: "Food", Date: "2025-09-27", Amount: 11250},
		{Category: "FIB Extract", Date: "2025-09-27", Amount: 12000},
		{Category: "Food", Date: "2025-09-30", Amount: 4000},
		{Category: "Car Care", Date: "2025-10-01", Amount: 5000},
		{Category: "Food", Date: "2025-10-01", Amount: 12500},
		{Category: "Food", Date: "2025-10-02", Amount: 6700},
		{Category: "Car Plate", Date: "2025-10-02", Amount: 1550000},
		{Category: "Fuel", Date: "2025-10-03", Amount: 25000},
		{Category: "Food", Date: "2025-10-04", Amount: 5000},
		{Category: "Food", Date: "2025-10-05", Amount: 5000},
		{Category: "Food", Date: "2025-10-06", Amount: 6507},
		{Category: "Certificate", Date: "2025-10-07", Amount: 50000},
		{Category: "Food", Date: "2025-10-08", Amount: 12259},
		{Category: "Food", Date: "2025-10-09", Amount: 5500},
		{Category: "Food", Date: "2025-10-11", Amount: 20000},
		{Category: "Car Care", Date: "2025-10-12", Amount: 5000},
		{Category: "Food", Date: "2025-10-12", Amount: 6000},
		{Category: "Car Wash", Date: "2025-10-12", Amount: 10000},
		{Category: "Food", Date: "2025-10-13", Amount: 9950},
		{Category: "Food", Date: "2025-10-14", Amount: 5000},
		{Category: "Food", Date: "2025-10-15", Amount: 9500},
		{Category: "Food", Date: "2025-10-16", Amount: 5225},
		{Category: "Malzama", Date: "2025-10-17", Amount: 36000},
		{Category: "Food", Date: "2025-10-17", Amount: 3750},
		{Category: "Fuel", Date: "2025-10-17", Amount: 25000},
		{Category: "Internet", Date: "2025-10-17", Amount: 5000},
		{Category: "Food", Date: "2025-10-18", Amount: 15000},
		{Category: "Food", Date: "2025-10-20", Amount: 5795},
		{Category: "Food", Date: "2025-10-21", Amount: 6500},
		{Category: "Food", Date: "2025-10-22", Amount: 4000},
		{Category: "Food", Date: "2025-10-23", Amount: 11625},
		{Category: "Food", Date: "2025-10-24", Amount: 5650},
		{Category: "Food", Date: "2025-10-25", Amount: 17000},
		{Category: "Fuel", Date: "2025-10-25", Amount: 15000},
		{Category: "Food", Date: "2025-10-26", Amount: 5000},
		{Category: "Food", Date: "2025-10-27", Amount: 5500},
		{Category: "Food", Date: "2025-10-28", Amount: 5842},
		{Category: "Food", Date: "2025-10-29", Amount: 7750},
		{Category: "Fuel", Date: "2025-10-30", Amount: 20000},
		{Category: "Food", Date: "2025-10-31", Amount: 2000},
		{Category: "Barber", Date: "2025-10-31", Amount: 5000},
		{Category: "Food", Date: "2025-11-01", Amount: 6250},
		{Category: "Food", Date: "2025-11-03", Amount: 5700},
		{Category: "Food", Date: "2025-11-05", Amount: 9831},
		{Category: "Food", Date: "2025-11-06", Amount: 8975},
		{Category: "Food", Date: "2025-11-07", Amount: 4914},
		{Category: "Food", Date: "2025-11-08", Amount: 15750},
		{Category: "Korek", Date: "2025-11-08", Amount: 1400},
		{Category: "Car Wash", Date: "2025-11-09", Amount: 6000},
		{Category: "Food", Date: "2025-11-09", Amount: 35000},
		{Category: "Fuel", Date: "2025-11-09", Amount: 10000},
		{Category: "Internet", Date: "2025-11-10", Amount: 5000},
		{Category: "Food", Date: "2025-11-11", Amount: 5555},
		{Category: "Food", Date: "2025-11-13", Amount: 5115},
		{Category: "GitHub Copilot", Date: "2025-11-13", Amount: 13755},
		{Category: "Food", Date: "2025-11-14", Amount: 6757},
		{Category: "Food", Date: "2025-11-15", Amount: 15000},
		{Category: "Fuel", Date: "2025-11-15", Amount: 20000},
		{Category: "Food", Date: "2025-11-17", Amount: 6060},
		{Category: "Food", Date: "2025-11-18", Amount: 2500},
		{Category: "Food", Date: "2025-11-19", Amount: 6717},
		{Category: "Food", Date: "2025-11-20", Amount: 11110},
		{Category: "SQL Course", Date: "2025-11-20", Amount: 13780},
		{Category: "Internet", Date: "2025-11-20", Amount: 5000},
		{Category: "Car Wash", Date: "2025-11-21", Amount: 6000},
		{Category: "Food", Date: "2025-11-21", Amount: 4118},
		{Category: "Fuel", Date: "2025-11-21", Amount: 15000},
		{Category: "Car Care", Date: "2025-11-21", Amount: 2000},
		{Category: "Food", Date: "2025-11-22", Amount: 14000},
		{Category: "Food", Date: "2025-11-23", Amount: 6060},
		{Category: "Car Wash", Date: "2025-11-25", Amount: 5808},
		{Category: "Food", Date: "2025-11-26", Amount: 6439},
		{Category: "Fuel", Date: "2025-11-26", Amount: 15000},
		{Category: "Jacket", Date: "2025-11-27", Amount: 85000},
		{Category: "Barber", Date: "2025-11-28", Amount: 7000},
		{Category: "Fuel", Date: "2025-11-29", Amount: 25000},
		{Category: "Food", Date: "2025-12-01", Amount: 6060},
		{Category: "Food", Date: "2025-12-03", Amount: 12726},
		{Category: "Food", Date: "2025-12-04", Amount: 4545},
		{Category: "Food", Date: "2025-12-05", Amount: 8535},
		{Category: "Charger", Date: "2025-12-07", Amount: 20000},
		{Category: "Food", Date: "2025-12-10", Amount: 17000},
		{Category: "Fuel", Date: "2025-12-10", Amount: 20000},
		{Category: "Internet", Date: "2025-12-10", Amount: 5000},
		{Category: "Internet", Date: "2025-12-12", Amount: 20000},
		{Category: "Fuel", Date: "2025-12-13", Amount: 10000},
		{Category: "Food", Date: "2025-12-17", Amount: 21403},
		{Category: "Parking", Date: "2025-12-18", Amount: 6000},
		{Category: "Food", Date: "2025-12-18", Amount: 1000},
		{Category: "Food", Date: "2025-12-19", Amount: 21500},
		{Category: "Barber", Date: "2025-12-19", Amount: 5000},
		{Category: "Food", Date: "2025-12-21", Amount: 10000},
		{Category: "Food", Date: "2025-12-22", Amount: 7070},
		{Category: "Food", Date: "2025-12-23", Amount: 48480},
		{Category: "Food", Date: "2025-12-24", Amount: 6500},
		{Category: "Gaming", Date: "2025-12-24", Amount: 5999},
		{Category: "Car Oil", Date: "2025-12-25", Amount: 50000},
		{Category: "Fuel", Date: "2025-12-25", Amount: 20000},
		{Category: "Transaction Fee", Date: "2025-12-25", Amount: 1202},
		{Category: "Food", Date: "2025-12-26", Amount: 10815},
		{Category: "Food", Date: "2025-12-27", Amount: 11817},
		{Category: "Food", Date: "2025-12-28", Amount: 17600},
		{Category: "Shampoo", Date: "2025-12-28", Amount: 11500},
		{Category: "Food", Date: "2025-12-29", Amount: 6880},
		{Category: "ChatGPT", Date: "2026-01-01", Amount: 6550},
		{Category: "Food", Date: "2026-01-02", Amount: 25000},
		{Category: "Food", Date: "2026-01-03", Amount: 4383},
		{Category: "Food", Date: "2026-01-04", Amount: 5750},
		{Category: "Food", Date: "2026-01-05", Amount: 22750},
		{Category: "Food", Date: "2026-01-07", Amount: 11000},
		{Category: "Food", Date: "2026-01-08", Amount: 3500},
		{Category: "Food", Date: "2026-01-09", Amount: 8232},
		{Category: "Food", Date: "2026-01-10", Amount: 6186},
		{Category: "Food", Date: "2026-01-11", Amount: 10000},
		{Category: "Canva Pro", Date: "2026-01-11", Amount: 5000},
		{Category: "Food", Date: "2026-01-12", Amount: 11575},
		{Category: "Fuel", Date: "2026-01-12", Amount: 20000},
		{Category: "Car Care", Date: "2026-01-12", Amount: 2000},
		{Category: "Food", Date: "2026-01-14", Amount: 17019},
		{Category: "Food", Date: "2026-01-15", Amount: 6565},
		{Category: "Barber", Date: "2026-01-16", Amount: 10000},
		{Category: "Food", Date: "2026-01-16", Amount: 18000},
		{Category: "Food", Date: "2026-01-17", Amount: 40000},
		{Category: "Internet", Date: "2026-01-18", Amount: 5000},
		{Category: "Food", Date: "2026-01-18", Amount: 4500},
		{Category: "Food", Date: "2026-01-19", Amount: 3500},
		{Category: "Food", Date: "2026-01-21", Amount: 4750},
		{Category: "Food", Date: "2026-01-22", Amount: 24500},
		{Category: "Food", Date: "2026-01-23", Amount: 3850},
		{Category: "Food", Date: "2026-01-24", Amount: 11250},
		{Category: "Food", Date: "2026-01-25", Amount: 8750},
		{Category: "Food", Date: "2026-01-26", Amount: 12970},
		{Category: "Sherwan's Farewell", Date: "2026-01-27", Amount: 15050},
		{Category: "Food", Date: "2026-01-27", Amount: 6866},
		{Category: "Redmi Pad 2 Pro", Date: "2026-01-27", Amount: 425000},
		{Category: "Parking", Date: "2026-01-28", Amount: 2000},
		{Category: "Grade 12 Transcript", Date: "2026-01-28", Amount: 35000},
		{Category: "Food", Date: "2026-01-29", Amount: 18505},
		{Category: "Food", Date: "2026-01-31", Amount: 14250},
	}
}

// IncomeSeedData 返回内置的历史月度收入数据
func IncomeSeedData() []IncomeSeed {
	return []IncomeSeed{
		{Month: "2025-03", Income: 765848.36, Saved: 0, Home: 700000},
		{Month: "2025-04", Income: 1059769.54, Saved: 0, Home: 0},
		{Month: "2025-05", Income: 1299260, Saved: 0, Home: 0},
		{Month: "2025-06", Income: 807067.18, Saved: 0, Home: 0},
		{Month: "2025-07", Income: 1324384.05, Saved: 0, Home: 0},
		{Month: "2025-08", Income: 807067.18, Saved: 0, Home: 0},
		{Month: "2025-09", Income: 1324384.05, Saved: 200000, Home: 0},
		{Month: "2025-10", Income: 807067.18, Saved: 600000, Home: 0},
		{Month: "2025-11", Income: 1324384.05, Saved: 1000000, Home: 0},
		{Month: "2025-12", Income: 821667.18, Saved: 0, Home: 0},
		{Month: "2026-01", Income: 1359322.02, Saved: 0, Home: 0},
	}
}
