package store

import (
	"context"
	"fmt"
)

// SeedIfEmpty populates an empty store with the representative car catalog.
// It only triggers when the record count is exactly zero, which makes it
// idempotent across restarts. Returns whether seeding happened.
func SeedIfEmpty(ctx context.Context, s CarStore) (bool, error) {
	count, err := s.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check car count before seeding: %w", err)
	}
	if count != 0 {
		return false, nil
	}
	if err := s.CreateBatch(ctx, SeedCatalog()); err != nil {
		return false, fmt.Errorf("failed to seed car catalog: %w", err)
	}
	return true, nil
}

// SeedCatalog returns the fixed catalog of 20 representative cars.
func SeedCatalog() []NewCar {
	return []NewCar{
		{Name: "Toyota Camry LE", Category: "Sedan", Quantity: 3, Price: 24999.99, Description: "Reliable mid-size sedan with excellent fuel economy", Year: int32Ptr(2022), Mileage: int32Ptr(15000), Vin: "1HGBH41JXMN109186", Color: "Silver"},
		{Name: "Honda Accord Sport", Category: "Sedan", Quantity: 2, Price: 27999.99, Description: "Sporty sedan with advanced safety features", Year: int32Ptr(2023), Mileage: int32Ptr(8000), Vin: "2HGFC2F59MH542321", Color: "Blue"},
		{Name: "Ford F-150 XLT", Category: "Truck", Quantity: 4, Price: 42999.99, Description: "Best-selling full-size pickup truck", Year: int32Ptr(2021), Mileage: int32Ptr(32000), Vin: "1FTFW1E59MFB12345", Color: "Black"},
		{Name: "Chevrolet Silverado", Category: "Truck", Quantity: 2, Price: 45999.99, Description: "Powerful and capable pickup truck", Year: int32Ptr(2022), Mileage: int32Ptr(18000), Vin: "1GC4YPE76MF123456", Color: "White"},
		{Name: "Tesla Model 3", Category: "Sedan", Quantity: 1, Price: 39999.99, Description: "Premium electric sedan with autopilot", Year: int32Ptr(2023), Mileage: int32Ptr(5000), Vin: "5YJ3E1EA9MF000001", Color: "Red"},
		{Name: "BMW X5 M Sport", Category: "SUV", Quantity: 2, Price: 62999.99, Description: "Luxury mid-size SUV with premium features", Year: int32Ptr(2022), Mileage: int32Ptr(12000), Vin: "5UXCR6C59M9C12345", Color: "Space Gray"},
		{Name: "Mercedes-Benz C-Class", Category: "Sedan", Quantity: 1, Price: 44999.99, Description: "Elegant luxury sedan with advanced technology", Year: int32Ptr(2023), Mileage: int32Ptr(3000), Vin: "W1KZF8HB9MA123456", Color: "Black"},
		{Name: "Jeep Wrangler Unlimited", Category: "SUV", Quantity: 3, Price: 38999.99, Description: "Iconic off-road SUV with removable top", Year: int32Ptr(2022), Mileage: int32Ptr(20000), Vin: "1C4HJXDG9MW123456", Color: "Green"},
		{Name: "Toyota RAV4 Hybrid", Category: "SUV", Quantity: 4, Price: 32999.99, Description: "Fuel-efficient compact SUV", Year: int32Ptr(2023), Mileage: int32Ptr(10000), Vin: "2T3P1RFV9MC123456", Color: "White"},
		{Name: "Honda CR-V EX", Category: "SUV", Quantity: 3, Price: 29999.99, Description: "Spacious and practical compact SUV", Year: int32Ptr(2022), Mileage: int32Ptr(16000), Vin: "2HKRW2H88MH123456", Color: "Gray"},
		{Name: "Mazda CX-5 Touring", Category: "SUV", Quantity: 2, Price: 28999.99, Description: "Stylish SUV with engaging driving dynamics", Year: int32Ptr(2023), Mileage: int32Ptr(7000), Vin: "JM3KFBCM9M0123456", Color: "Soul Red"},
		{Name: "Nissan Altima SV", Category: "Sedan", Quantity: 3, Price: 25999.99, Description: "Comfortable sedan with modern tech", Year: int32Ptr(2022), Mileage: int32Ptr(14000), Vin: "1N4BL4BV9MC123456", Color: "Pearl White"},
		{Name: "Hyundai Tucson SEL", Category: "SUV", Quantity: 4, Price: 27999.99, Description: "Compact SUV with great warranty", Year: int32Ptr(2023), Mileage: int32Ptr(9000), Vin: "5NMS24AJ9MH123456", Color: "Blue"},
		{Name: "Subaru Outback", Category: "SUV", Quantity: 2, Price: 33999.99, Description: "Adventure-ready wagon with AWD", Year: int32Ptr(2022), Mileage: int32Ptr(11000), Vin: "4S4BTANC9M3123456", Color: "Green"},
		{Name: "Volkswagen Jetta SE", Category: "Sedan", Quantity: 3, Price: 22999.99, Description: "European-styled compact sedan", Year: int32Ptr(2023), Mileage: int32Ptr(6000), Vin: "3VWC57BU9MM123456", Color: "White"},
		{Name: "Kia Sportage SX", Category: "SUV", Quantity: 2, Price: 31999.99, Description: "Modern SUV with bold styling", Year: int32Ptr(2022), Mileage: int32Ptr(13000), Vin: "KNDPM3AC9M7123456", Color: "Black"},
		{Name: "Ford Mustang GT", Category: "Coupe", Quantity: 1, Price: 46999.99, Description: "Iconic American muscle car", Year: int32Ptr(2023), Mileage: int32Ptr(2000), Vin: "1FA6P8CF9M5123456", Color: "Race Red"},
		{Name: "Chevrolet Corvette", Category: "Coupe", Quantity: 1, Price: 69999.99, Description: "Mid-engine sports car with thrilling performance", Year: int32Ptr(2022), Mileage: int32Ptr(4000), Vin: "1G1YB2D49M5123456", Color: "Yellow"},
		{Name: "Audi A4 Premium", Category: "Sedan", Quantity: 2, Price: 41999.99, Description: "Refined luxury sedan with Quattro AWD", Year: int32Ptr(2023), Mileage: int32Ptr(5000), Vin: "WAUENAF49MN123456", Color: "Manhattan Gray"},
		{Name: "Lexus RX 350", Category: "SUV", Quantity: 1, Price: 48999.99, Description: "Premium luxury SUV with reliability", Year: int32Ptr(2022), Mileage: int32Ptr(8000), Vin: "2T2HZMAA9MC123456", Color: "Atomic Silver"},
	}
}

func int32Ptr(v int32) *int32 {
	return &v
}
