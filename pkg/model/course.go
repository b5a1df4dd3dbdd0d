package model

// Course is a unit of teaching identified by its code. Hours is the total
// slot count the course requires; each obligation's remaining counter starts
// from it.
type Course struct {
	Name  string `csv:"Course_Name"`
	Code  string `csv:"Course_Code"`
	Hours int    `csv:"Hours"`
}
