package catalog

import (
	"github.com/mhanac/storefront-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

func usd(amount int64) decimal.Decimal { return decimal.NewFromInt(amount) }
func htg(amount int64) decimal.Decimal { return decimal.NewFromInt(amount) }

// products is the static catalog. US entries price in USD, Haiti entries in
// HTG; the two must agree with the owning region by construction.
var products = []Product{
	// --- US ---
	{
		ID:       "us-deal-smartwatch",
		Region:   enums.RegionUS,
		Category: enums.CategoryDeals,
		Title: Title{
			enums.LanguageEN: "Fitness Smartwatch",
			enums.LanguageFR: "Montre connectée fitness",
			enums.LanguageHT: "Mont entelijan pou fòm fizik",
			enums.LanguageES: "Reloj inteligente fitness",
		},
		Price:    usd(89),
		Currency: enums.CurrencyUSD,
		Image:    "/images/listproduc/electro.png",
		IsNew:    true,
	},
	{
		ID:       "us-deal-blender",
		Region:   enums.RegionUS,
		Category: enums.CategoryDeals,
		Title: Title{
			enums.LanguageEN: "High-Speed Blender",
			enums.LanguageFR: "Mixeur haute vitesse",
			enums.LanguageHT: "Blendè gwo vitès",
			enums.LanguageES: "Licuadora de alta velocidad",
		},
		Price:    usd(59),
		Currency: enums.CurrencyUSD,
		Image:    "/images/listproduc/home.png",
	},
	{
		ID:       "us-elc-tv55",
		Region:   enums.RegionUS,
		Category: enums.CategoryElectronics,
		Title: Title{
			enums.LanguageEN: "55\" 4K Smart TV",
			enums.LanguageFR: "Téléviseur intelligent 4K 55\"",
			enums.LanguageHT: "Televizyon entelijan 4K 55\"",
			enums.LanguageES: "Smart TV 4K de 55\"",
		},
		Price:    usd(449),
		Currency: enums.CurrencyUSD,
		Image:    "/images/listproduc/electro.png",
		IsNew:    true,
	},
	{
		ID:       "us-elc-earbuds",
		Region:   enums.RegionUS,
		Category: enums.CategoryElectronics,
		Title: Title{
			enums.LanguageEN: "Wireless Earbuds",
			enums.LanguageFR: "Écouteurs sans fil",
			enums.LanguageHT: "Zòrèy san fil",
			enums.LanguageES: "Auriculares inalámbricos",
		},
		Price:    usd(39),
		Currency: enums.CurrencyUSD,
		Image:    "/images/listproduc/electro.png",
	},
	{
		ID:       "us-hmk-cookset",
		Region:   enums.RegionUS,
		Category: enums.CategoryHomeKitchen,
		Title: Title{
			enums.LanguageEN: "Nonstick Cookware Set",
			enums.LanguageFR: "Batterie de cuisine antiadhésive",
			enums.LanguageHT: "Seri chodyè ki pa kole",
			enums.LanguageES: "Juego de ollas antiadherentes",
		},
		Price:    usd(129),
		Currency: enums.CurrencyUSD,
		Image:    "/images/listproduc/home.png",
	},
	{
		ID:       "us-bty-serum",
		Region:   enums.RegionUS,
		Category: enums.CategoryBeauty,
		Title: Title{
			enums.LanguageEN: "Vitamin C Face Serum",
			enums.LanguageFR: "Sérum visage vitamine C",
			enums.LanguageHT: "Sewòm vizaj vitamin C",
			enums.LanguageES: "Sérum facial de vitamina C",
		},
		Price:    usd(24),
		Currency: enums.CurrencyUSD,
		Image:    "/images/listproduc/beauty.png",
	},
	{
		ID:       "us-fsh-sneakers",
		Region:   enums.RegionUS,
		Category: enums.CategoryFashion,
		Title: Title{
			enums.LanguageEN: "Running Sneakers",
			enums.LanguageFR: "Baskets de course",
			enums.LanguageHT: "Tenis pou kouri",
			enums.LanguageES: "Zapatillas para correr",
		},
		Price:    usd(75),
		Currency: enums.CurrencyUSD,
		Image:    "/images/listproduc/fashion.png",
		IsNew:    true,
	},
	{
		ID:       "us-grc-ricebag",
		Region:   enums.RegionUS,
		Category: enums.CategoryGrocery,
		Title: Title{
			enums.LanguageEN: "Jasmine Rice 20 lb",
			enums.LanguageFR: "Riz jasmin 20 lb",
			enums.LanguageHT: "Diri jasmen 20 liv",
			enums.LanguageES: "Arroz jazmín 20 lb",
		},
		Price:    usd(32),
		Currency: enums.CurrencyUSD,
		Image:    "/images/listproduc/grocery.png",
	},
	{
		ID:       "us-hlt-multivitamin",
		Region:   enums.RegionUS,
		Category: enums.CategoryHealth,
		Title: Title{
			enums.LanguageEN: "Daily Multivitamin, 180 ct",
			enums.LanguageFR: "Multivitamine quotidienne, 180 un.",
			enums.LanguageHT: "Miltivitamin chak jou, 180 grenn",
			enums.LanguageES: "Multivitamínico diario, 180 un.",
		},
		Price:    usd(19),
		Currency: enums.CurrencyUSD,
		Image:    "/images/front.png",
	},
	{
		ID:       "us-bby-stroller",
		Region:   enums.RegionUS,
		Category: enums.CategoryBabyKids,
		Title: Title{
			enums.LanguageEN: "Lightweight Stroller",
			enums.LanguageFR: "Poussette légère",
			enums.LanguageHT: "Pousèt leje",
			enums.LanguageES: "Cochecito ligero",
		},
		Price:    usd(149),
		Currency: enums.CurrencyUSD,
		Image:    "/images/listproduc/baby.png",
	},
	{
		ID:       "us-toy-blocks",
		Region:   enums.RegionUS,
		Category: enums.CategoryToysGames,
		Title: Title{
			enums.LanguageEN: "Building Blocks Set, 500 pcs",
			enums.LanguageFR: "Jeu de blocs de construction, 500 pcs",
			enums.LanguageHT: "Seri blòk konstriksyon, 500 moso",
			enums.LanguageES: "Set de bloques de construcción, 500 pzas",
		},
		Price:    usd(45),
		Currency: enums.CurrencyUSD,
		Image:    "/images/front.png",
	},
	{
		ID:       "us-spt-dumbbells",
		Region:   enums.RegionUS,
		Category: enums.CategorySportsOutdoors,
		Title: Title{
			enums.LanguageEN: "Adjustable Dumbbell Pair",
			enums.LanguageFR: "Paire d'haltères réglables",
			enums.LanguageHT: "Pè dumbbell reglab",
			enums.LanguageES: "Par de mancuernas ajustables",
		},
		Price:    usd(199),
		Currency: enums.CurrencyUSD,
		Image:    "/images/front.png",
	},
	{
		ID:       "us-aut-dashcam",
		Region:   enums.RegionUS,
		Category: enums.CategoryAutomotive,
		Title: Title{
			enums.LanguageEN: "1080p Dash Camera",
			enums.LanguageFR: "Caméra embarquée 1080p",
			enums.LanguageHT: "Kamera machin 1080p",
			enums.LanguageES: "Cámara de tablero 1080p",
		},
		Price:    usd(54),
		Currency: enums.CurrencyUSD,
		Image:    "/images/front.png",
		IsNew:    true,
	},
	{
		ID:       "us-tls-drillkit",
		Region:   enums.RegionUS,
		Category: enums.CategoryToolsHomeImprovement,
		Title: Title{
			enums.LanguageEN: "20V Cordless Drill Kit",
			enums.LanguageFR: "Kit perceuse sans fil 20V",
			enums.LanguageHT: "Kit pèsez san fil 20V",
			enums.LanguageES: "Kit de taladro inalámbrico 20V",
		},
		Price:    usd(89),
		Currency: enums.CurrencyUSD,
		Image:    "/images/front.png",
	},
	{
		ID:       "us-ofc-deskchair",
		Region:   enums.RegionUS,
		Category: enums.CategoryOfficeSchool,
		Title: Title{
			enums.LanguageEN: "Ergonomic Desk Chair",
			enums.LanguageFR: "Chaise de bureau ergonomique",
			enums.LanguageHT: "Chèz biwo ègonomik",
			enums.LanguageES: "Silla de escritorio ergonómica",
		},
		Price:    usd(139),
		Currency: enums.CurrencyUSD,
		Image:    "/images/front.png",
	},
	{
		ID:       "us-pet-foodbowl",
		Region:   enums.RegionUS,
		Category: enums.CategoryPetSupplies,
		Title: Title{
			enums.LanguageEN: "Slow-Feed Pet Bowl",
			enums.LanguageFR: "Gamelle anti-glouton",
			enums.LanguageHT: "Bòl manje pou bèt ki manje dousman",
			enums.LanguageES: "Tazón antivoracidad para mascotas",
		},
		Price:    usd(14),
		Currency: enums.CurrencyUSD,
		Image:    "/images/front.png",
	},
	{
		ID:       "us-whl-waterpallet",
		Region:   enums.RegionUS,
		Category: enums.CategoryWholesaleBulk,
		Title: Title{
			enums.LanguageEN: "Bottled Water Pallet, 48 cases",
			enums.LanguageFR: "Palette d'eau en bouteille, 48 caisses",
			enums.LanguageHT: "Palèt dlo nan boutèy, 48 kès",
			enums.LanguageES: "Palé de agua embotellada, 48 cajas",
		},
		Price:    usd(260),
		Currency: enums.CurrencyUSD,
		Image:    "/images/listproduc/groce1.png",
	},

	// --- Haiti ---
	{
		ID:       "ht-deal-powerbank",
		Region:   enums.RegionHaiti,
		Category: enums.CategoryDeals,
		Title: Title{
			enums.LanguageEN: "20000mAh Power Bank",
			enums.LanguageFR: "Batterie externe 20000mAh",
			enums.LanguageHT: "Power bank 20000mAh",
			enums.LanguageES: "Batería externa 20000mAh",
		},
		Price:    htg(4500),
		Currency: enums.CurrencyHTG,
		Image:    "/images/listproduc/electro.png",
		IsNew:    true,
	},
	{
		ID:       "ht-deal-fan",
		Region:   enums.RegionHaiti,
		Category: enums.CategoryDeals,
		Title: Title{
			enums.LanguageEN: "Rechargeable Standing Fan",
			enums.LanguageFR: "Ventilateur sur pied rechargeable",
			enums.LanguageHT: "Vantilatè rechajab sou pye",
			enums.LanguageES: "Ventilador de pie recargable",
		},
		Price:    htg(7800),
		Currency: enums.CurrencyHTG,
		Image:    "/images/listproduc/home.png",
	},
	{
		ID:       "ht-elc-phone",
		Region:   enums.RegionHaiti,
		Category: enums.CategoryElectronics,
		Title: Title{
			enums.LanguageEN: "Dual-SIM Smartphone",
			enums.LanguageFR: "Smartphone double SIM",
			enums.LanguageHT: "Smartphone de SIM",
			enums.LanguageES: "Smartphone dual SIM",
		},
		Price:    htg(21500),
		Currency: enums.CurrencyHTG,
		Image:    "/images/listproduc/electro.png",
		IsNew:    true,
	},
	{
		ID:       "ht-hmk-cookset",
		Region:   enums.RegionHaiti,
		Category: enums.CategoryHomeKitchen,
		Title: Title{
			enums.LanguageEN: "Aluminum Pot Set",
			enums.LanguageFR: "Ensemble de marmites en aluminium",
			enums.LanguageHT: "Seri chodyè aliminyòm",
			enums.LanguageES: "Juego de ollas de aluminio",
		},
		Price:    htg(9500),
		Currency: enums.CurrencyHTG,
		Image:    "/images/listproduc/home.png",
	},
	{
		ID:       "ht-bty-shea",
		Region:   enums.RegionHaiti,
		Category: enums.CategoryBeauty,
		Title: Title{
			enums.LanguageEN: "Shea Butter Cream",
			enums.LanguageFR: "Crème au beurre de karité",
			enums.LanguageHT: "Krèm bè karite",
			enums.LanguageES: "Crema de manteca de karité",
		},
		Price:    htg(1200),
		Currency: enums.CurrencyHTG,
		Image:    "/images/listproduc/beauty.png",
	},
	{
		ID:       "ht-fsh-sundress",
		Region:   enums.RegionHaiti,
		Category: enums.CategoryFashion,
		Title: Title{
			enums.LanguageEN: "Cotton Sundress",
			enums.LanguageFR: "Robe d'été en coton",
			enums.LanguageHT: "Wòb koton pou solèy",
			enums.LanguageES: "Vestido de verano de algodón",
		},
		Price:    htg(3200),
		Currency: enums.CurrencyHTG,
		Image:    "/images/listproduc/fashion.png",
	},
	{
		ID:       "ht-grc-ricebag",
		Region:   enums.RegionHaiti,
		Category: enums.CategoryGrocery,
		Title: Title{
			enums.LanguageEN: "Local Rice 25 kg",
			enums.LanguageFR: "Riz local 25 kg",
			enums.LanguageHT: "Diri peyi 25 kg",
			enums.LanguageES: "Arroz local 25 kg",
		},
		Price:    htg(6200),
		Currency: enums.CurrencyHTG,
		Image:    "/images/listproduc/grocery.png",
	},
	{
		ID:       "ht-hlt-firstaid",
		Region:   enums.RegionHaiti,
		Category: enums.CategoryHealth,
		Title: Title{
			enums.LanguageEN: "Family First-Aid Kit",
			enums.LanguageFR: "Trousse de premiers secours familiale",
			enums.LanguageHT: "Twous premye swen pou fanmi",
			enums.LanguageES: "Botiquín familiar de primeros auxilios",
		},
		Price:    htg(2800),
		Currency: enums.CurrencyHTG,
		Image:    "/images/front.png",
	},
	{
		ID:       "ht-bby-carrier",
		Region:   enums.RegionHaiti,
		Category: enums.CategoryBabyKids,
		Title: Title{
			enums.LanguageEN: "Baby Carrier Wrap",
			enums.LanguageFR: "Écharpe de portage bébé",
			enums.LanguageHT: "Twal pote tibebe",
			enums.LanguageES: "Fular portabebés",
		},
		Price:    htg(1900),
		Currency: enums.CurrencyHTG,
		Image:    "/images/listproduc/baby.png",
	},
	{
		ID:       "ht-toy-soccer",
		Region:   enums.RegionHaiti,
		Category: enums.CategoryToysGames,
		Title: Title{
			enums.LanguageEN: "Size 5 Soccer Ball",
			enums.LanguageFR: "Ballon de football taille 5",
			enums.LanguageHT: "Balon foutbòl gwosè 5",
			enums.LanguageES: "Balón de fútbol talla 5",
		},
		Price:    htg(1500),
		Currency: enums.CurrencyHTG,
		Image:    "/images/front.png",
	},
	{
		ID:       "ht-spt-bicycle",
		Region:   enums.RegionHaiti,
		Category: enums.CategorySportsOutdoors,
		Title: Title{
			enums.LanguageEN: "Mountain Bicycle 26\"",
			enums.LanguageFR: "VTT 26\"",
			enums.LanguageHT: "Bisiklèt mòn 26\"",
			enums.LanguageES: "Bicicleta de montaña 26\"",
		},
		Price:    htg(28500),
		Currency: enums.CurrencyHTG,
		Image:    "/images/front.png",
	},
	{
		ID:       "ht-tls-generator",
		Region:   enums.RegionHaiti,
		Category: enums.CategoryToolsHomeImprovement,
		Title: Title{
			enums.LanguageEN: "3500W Portable Generator",
			enums.LanguageFR: "Groupe électrogène portable 3500W",
			enums.LanguageHT: "Dèlko pòtab 3500W",
			enums.LanguageES: "Generador portátil 3500W",
		},
		Price:    htg(85000),
		Currency: enums.CurrencyHTG,
		Image:    "/images/front.png",
		IsNew:    true,
	},
	{
		ID:       "ht-ofc-notebooks",
		Region:   enums.RegionHaiti,
		Category: enums.CategoryOfficeSchool,
		Title: Title{
			enums.LanguageEN: "School Notebook Bundle, 12 pk",
			enums.LanguageFR: "Lot de cahiers scolaires, 12 pcs",
			enums.LanguageHT: "Pakè kaye lekòl, 12 pyès",
			enums.LanguageES: "Paquete de cuadernos escolares, 12 uds",
		},
		Price:    htg(950),
		Currency: enums.CurrencyHTG,
		Image:    "/images/front.png",
	},
	{
		ID:       "ht-svc-moneytransfer",
		Region:   enums.RegionHaiti,
		Category: enums.CategoryServices,
		Title: Title{
			enums.LanguageEN: "Money Transfer Pickup",
			enums.LanguageFR: "Retrait de transfert d'argent",
			enums.LanguageHT: "Retrè transfè lajan",
			enums.LanguageES: "Retiro de transferencia de dinero",
		},
		Price:    htg(250),
		Currency: enums.CurrencyHTG,
		Image:    "/images/front.png",
	},
	{
		ID:       "ht-whl-cookingoil",
		Region:   enums.RegionHaiti,
		Category: enums.CategoryWholesaleBulk,
		Title: Title{
			enums.LanguageEN: "Cooking Oil Case, 12 gal",
			enums.LanguageFR: "Caisse d'huile de cuisson, 12 gal",
			enums.LanguageHT: "Kès lwil manje, 12 galon",
			enums.LanguageES: "Caja de aceite de cocina, 12 gal",
		},
		Price:    htg(14500),
		Currency: enums.CurrencyHTG,
		Image:    "/images/listproduc/groce1.png",
	},
}

// Products returns the full static product list in declaration order.
func Products() []Product {
	out := make([]Product, len(products))
	copy(out, products)
	return out
}

// ProductByID looks up a catalog entry by identifier.
func ProductByID(id string) (Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}
