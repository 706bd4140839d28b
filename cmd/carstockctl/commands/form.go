package commands

import (
	"github.com/abgdnv/carstock/internal/catalog"
	"github.com/spf13/cobra"
)

var (
	// Mutation form flags, shared by add and update
	formName        string
	formCategory    string
	formQuantity    int32
	formPrice       float64
	formDescription string
	formYear        int32
	formMileage     int32
	formVin         string
	formColor       string
)

// registerFormFlags attaches the car form flags to a mutation command.
func registerFormFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&formName, "name", "", "Car name (required)")
	cmd.Flags().StringVar(&formCategory, "category", "", "Category, e.g. Sedan, SUV, Truck, Coupe (required)")
	cmd.Flags().Int32Var(&formQuantity, "quantity", 0, "Stock quantity (required; 0 means out of stock)")
	cmd.Flags().Float64Var(&formPrice, "price", 0, "Price (required, must be positive)")
	cmd.Flags().StringVar(&formDescription, "description", "", "Free-text description")
	cmd.Flags().Int32Var(&formYear, "year", 0, "Model year")
	cmd.Flags().Int32Var(&formMileage, "mileage", 0, "Mileage in miles")
	cmd.Flags().StringVar(&formVin, "vin", "", "Vehicle identification number")
	cmd.Flags().StringVar(&formColor, "color", "", "Exterior color")

	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("quantity")
	_ = cmd.MarkFlagRequired("price")
}

// carForm builds the mutation payload from the parsed flags. Optional flags
// that were not set stay absent so the server resets them to their defaults.
func carForm(cmd *cobra.Command) catalog.CarForm {
	form := catalog.CarForm{
		Name:     formName,
		Category: formCategory,
		Quantity: &formQuantity,
		Price:    &formPrice,
	}
	if cmd.Flags().Changed("description") {
		form.Description = &formDescription
	}
	if cmd.Flags().Changed("year") {
		form.Year = &formYear
	}
	if cmd.Flags().Changed("mileage") {
		form.Mileage = &formMileage
	}
	if cmd.Flags().Changed("vin") {
		form.Vin = &formVin
	}
	if cmd.Flags().Changed("color") {
		form.Color = &formColor
	}
	return form
}
