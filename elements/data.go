/*
Copyright © 2021 the xraymac authors.
This file is part of xraymac.

xraymac is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

xraymac is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with xraymac.  If not, see <http://www.gnu.org/licenses/>.
*/

package elements

// Element data in atomic number order, from the Sargent-Welch periodic
// table (densities and masses) and the CASINO DOS sources (Fermi and
// plasmon data).

var symbols = [...]string{
	"H", "He", "Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar", "K", "Ca",
	"Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn",
	"Ga", "Ge", "As", "Se", "Br", "Kr", "Rb", "Sr", "Y", "Zr",
	"Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd", "In", "Sn",
	"Sb", "Te", "I", "Xe", "Cs", "Ba", "La", "Ce", "Pr", "Nd",
	"Pm", "Sm", "Eu", "Gd", "Tb", "Dy", "Ho", "Er", "Tm", "Yb",
	"Lu", "Hf", "Ta", "W", "Re", "Os", "Ir", "Pt", "Au", "Hg",
	"Tl", "Pb", "Bi", "Po", "At", "Rn", "Fr", "Ra", "Ac", "Th",
	"Pa", "U", "Np", "Pu", "Am", "Cm", "Bk", "Cf", "Es", "Fm",
	"Md", "No", "Lr", "Unq", "Unp", "Unh",
}

var names = [...]string{
	"Hydrogen", "Helium", "Lithium", "Beryllium", "Boron", "Carbon",
	"Nitrogen", "Oxygen", "Fluorine", "Neon", "Sodium", "Magnesium",
	"Aluminum", "Silicon", "Phosphorus", "Sulfur", "Chlorine", "Argon",
	"Potassium", "Calcium", "Scandium", "Titanium", "Vanadium", "Chromium",
	"Manganese", "Iron", "Cobalt", "Nickel", "Copper", "Zinc",
	"Gallium", "Germanium", "Arsenic", "Selenium", "Bromine", "Krypton",
	"Rubidium", "Strontium", "Yttrium", "Zirconium", "Niobium", "Molybdenum",
	"Technetium", "Ruthenium", "Rhodium", "Palladium", "Silver", "Cadmium",
	"Indium", "Tin", "Antimony", "Tellurium", "Iodine", "Xenon",
	"Cesium", "Barium", "Lanthanum", "Cerium", "Praseodymium", "Neodymium",
	"Promethium", "Samarium", "Europium", "Gadolinium", "Terbium", "Dysprosium",
	"Holmium", "Erbium", "Thulium", "Ytterbium", "Lutetium", "Hafnium",
	"Tantalum", "Tungsten", "Rhenium", "Osmium", "Iridium", "Platinum",
	"Gold", "Mercury", "Thallium", "Lead", "Bismuth", "Polonium",
	"Astatine", "Radon", "Francium", "Radium", "Actinium", "Thorium",
	"Protactinium", "Uranium", "Neptunium", "Plutonium", "Americium", "Curium",
	"Berkelium", "Californium", "Einsteinium", "Fermium", "Mendelevium", "Nobelium",
	"Lawrencium", "Unnilquadium", "Unnilpentium", "Unnilhexium",
}

// g/cm³, H to Cm. At and Fr are set to 1.
var massDensity = [...]float64{
	0.0899, 0.1787, 0.53, 1.85, 2.34, 2.62, 1.251, 1.429,
	1.696, 0.901, 0.97, 1.74, 2.7, 2.33, 1.82, 2.07,
	3.17, 1.784, 0.86, 1.55, 3.0, 4.5, 5.8, 7.19,
	7.43, 7.86, 8.9, 8.9, 8.96, 7.14, 5.91, 5.32,
	5.72, 4.8, 3.12, 3.74, 1.53, 2.6, 4.5, 6.49,
	8.55, 10.2, 11.5, 12.2, 12.4, 12.0, 10.5, 8.65,
	7.31, 7.3, 6.68, 6.24, 4.92, 5.89, 1.87, 3.5,
	6.7, 6.78, 6.77, 7.0, 6.475, 7.54, 5.26, 7.89,
	8.27, 8.54, 8.8, 9.05, 9.33, 6.98, 9.84, 13.1,
	16.6, 19.3, 21.0, 22.4, 22.5, 21.4, 19.3, 13.53,
	11.85, 11.4, 9.8, 9.4, 1.0, 9.91, 1.0, 5.0,
	10.07, 11.7, 15.4, 18.9, 20.4, 19.8, 13.6, 13.511,
}

// g/mol, H to Sg.
var atomicMass = [...]float64{
	1.0079, 4.0026, 6.941, 9.01218, 10.81, 12.011,
	14.0067, 15.9994, 18.998403, 20.179, 22.98977, 24.305,
	26.98154, 28.0855, 30.97376, 32.06, 35.453, 39.948,
	39.0983, 40.08, 44.9559, 47.9, 50.9415, 51.996,
	54.938, 55.847, 58.9332, 58.7, 63.546, 65.38,
	69.72, 72.59, 74.9216, 78.96, 79.904, 83.8,
	85.4678, 87.62, 88.9056, 91.22, 92.9064, 95.94,
	98.0, 101.07, 102.9055, 106.4, 107.868, 112.41,
	114.82, 118.69, 121.75, 127.6, 126.9045, 131.3,
	132.9054, 137.33, 138.9055, 140.12, 140.9077, 144.24,
	145.0, 150.4, 151.96, 157.25, 158.9254, 162.5,
	164.9304, 167.26, 168.9342, 173.04, 174.967, 178.49,
	180.9479, 183.85, 186.207, 190.2, 192.22, 195.09,
	196.9665, 200.59, 204.37, 207.2, 208.9804, 209.0,
	210.0, 222.0, 223.0, 226.0254, 227.0278, 232.0381,
	231.0359, 238.029, 237.0482, 244.0, 243.0, 247.0,
	247.0, 251.0, 252.0, 257.0, 258.0, 259.0,
	260.0, 261.0, 262.0, 263.0,
}

// H to Lr.
var fermiEnergy = [...]float64{
	1.0, 1.0, 4.7, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0,
	1.0, 3.1, 1.0, 1.0, 0.555, 1.0, 1.0, 1.0, 1.0,
	1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0,
	1.0, 7.0, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0,
	1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0,
	1.0, 5.5, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0,
	1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0,
	1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0,
	1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 5.5, 1.0, 1.0,
	1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0,
	1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 0.0,
	1.0, 1.0, 1.0, 1.0,
}

var kFermi = [...]float64{
	70000000.0, 70000000.0, 110000000.0, 70000000.0, 70000000.0, 70000000.0, 70000000.0, 70000000.0,
	70000000.0, 70000000.0, 90000000.0, 70000000.0, 70000000.0, 40000000.0, 70000000.0, 70000000.0,
	70000000.0, 70000000.0, 70000000.0, 70000000.0, 70000000.0, 70000000.0, 70000000.0, 70000000.0,
	70000000.0, 70000000.0, 70000000.0, 70000000.0, 135000000.0, 70000000.0, 70000000.0, 70000000.0,
	70000000.0, 70000000.0, 70000000.0, 70000000.0, 70000000.0, 70000000.0, 70000000.0, 70000000.0,
	70000000.0, 70000000.0, 70000000.0, 70000000.0, 70000000.0, 70000000.0, 119000000.0, 70000000.0,
	70000000.0, 70000000.0, 70000000.0, 70000000.0, 70000000.0, 70000000.0, 70000000.0, 70000000.0,
	70000000.0, 70000000.0, 70000000.0, 70000000.0, 70000000.0, 70000000.0, 70000000.0, 70000000.0,
	70000000.0, 70000000.0, 70000000.0, 70000000.0, 70000000.0, 70000000.0, 70000000.0, 70000000.0,
	70000000.0, 70000000.0, 70000000.0, 70000000.0, 70000000.0, 70000000.0, 119000000.0, 70000000.0,
	70000000.0, 70000000.0, 70000000.0, 70000000.0, 70000000.0, 70000000.0, 70000000.0, 70000000.0,
	70000000.0, 70000000.0, 70000000.0, 70000000.0, 70000000.0, 70000000.0, 70000000.0, 70000000.0,
	70000000.0, 70000000.0, 0.0, 70000000.0, 70000000.0, 70000000.0, 70000000.0,
}

var plasmonEnergy = [...]float64{
	15.0, 15.0, 7.1, 18.7, 22.7, 15.0, 15.0, 15.0, 15.0, 15.0, 5.7,
	10.3, 15.0, 16.7, 15.0, 15.0, 15.0, 15.0, 3.7, 8.8, 14.0, 17.9,
	21.8, 24.9, 21.6, 23.0, 20.9, 20.7, 19.3, 17.2, 13.8, 16.2, 15.0,
	15.0, 15.0, 15.0, 3.41, 8.0, 12.5, 15.0, 15.0, 15.0, 15.0, 15.0,
	15.0, 15.0, 15.0, 19.2, 15.0, 13.4, 15.2, 17.0, 11.4, 15.0, 2.9,
	7.2, 15.0, 15.0, 15.0, 15.0, 15.0, 15.0, 15.0, 15.0, 13.3, 15.0,
	15.0, 14.0, 15.0, 15.0, 15.0, 15.0, 15.0, 15.0, 15.0, 15.0, 15.0,
	35.0, 15.0, 15.0, 15.0, 13.0, 14.2, 15.0, 15.0, 15.0, 15.0, 15.0,
	25.0, 15.0, 15.0, 15.0, 15.0, 15.0, 15.0, 15.0, 15.0, 15.0, 15.0,
	15.0, 15.0, 15.0, 15.0,
}
