package catalog

import "storefront/internal/money"

// Default returns the storefront fixture catalog.
func Default() *Catalog {
	return MustNew(fixture())
}

func fixture() []Product {
	return []Product{
		{
			ID:            1,
			Name:          "Wireless Bluetooth Headphones",
			Category:      "electronics",
			Price:         money.FromFloat(99.99),
			OriginalPrice: money.FromFloat(129.99),
			Rating:        4.5,
			Reviews:       128,
			Image:         "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=300&h=300&fit=crop",
			Description:   "High-quality wireless headphones with noise cancellation",
			InStock:       true,
			Badge:         "Sale",
		},
		{
			ID:            2,
			Name:          "Smartphone - Latest Model",
			Category:      "electronics",
			Price:         money.FromFloat(699.99),
			OriginalPrice: money.FromFloat(799.99),
			Rating:        4.8,
			Reviews:       256,
			Image:         "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?w=300&h=300&fit=crop",
			Description:   "Latest smartphone with advanced camera and performance",
			InStock:       true,
			Badge:         "New",
		},
		{
			ID:            6,
			Name:          "Gaming Laptop",
			Category:      "electronics",
			Price:         money.FromFloat(1299.99),
			OriginalPrice: money.FromFloat(1499.99),
			Rating:        4.9,
			Reviews:       203,
			Image:         "https://images.unsplash.com/photo-1496181133206-80ce9b88a853?w=300&h=300&fit=crop",
			Description:   "High-performance gaming laptop with RTX graphics",
			InStock:       true,
			Badge:         "Hot",
		},
		{
			ID:            9,
			Name:          "Smart Watch Series 8",
			Category:      "electronics",
			Price:         money.FromFloat(299.99),
			OriginalPrice: money.FromFloat(349.99),
			Rating:        4.7,
			Reviews:       312,
			Image:         "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=300&h=300&fit=crop",
			Description:   "Advanced smartwatch with health monitoring and GPS",
			InStock:       true,
			Badge:         "Popular",
		},
		{
			ID:            10,
			Name:          "4K Ultra HD TV 55\"",
			Category:      "electronics",
			Price:         money.FromFloat(899.99),
			OriginalPrice: money.FromFloat(1199.99),
			Rating:        4.6,
			Reviews:       189,
			Image:         "https://images.unsplash.com/photo-1593359677879-a4bb92f829d1?w=300&h=300&fit=crop",
			Description:   "55-inch 4K Smart TV with HDR and voice control",
			InStock:       true,
			Badge:         "Featured",
		},
		{
			ID:            11,
			Name:          "Wireless Charging Pad",
			Category:      "electronics",
			Price:         money.FromFloat(29.99),
			OriginalPrice: money.FromFloat(39.99),
			Rating:        4.3,
			Reviews:       87,
			Image:         "https://images.unsplash.com/photo-1609592807386-6c8b2b6e4c7a?w=300&h=300&fit=crop",
			Description:   "Fast wireless charging pad for smartphones and accessories",
			InStock:       true,
			Badge:         "Sale",
		},
		{
			ID:            12,
			Name:          "Bluetooth Speaker",
			Category:      "electronics",
			Price:         money.FromFloat(79.99),
			OriginalPrice: money.FromFloat(99.99),
			Rating:        4.4,
			Reviews:       156,
			Image:         "https://images.unsplash.com/photo-1608043152269-423dbba4e7e1?w=300&h=300&fit=crop",
			Description:   "Portable Bluetooth speaker with 360-degree sound",
			InStock:       true,
			Badge:         "Best Seller",
		},
		{
			ID:            3,
			Name:          "Designer T-Shirt",
			Category:      "fashion",
			Price:         money.FromFloat(29.99),
			OriginalPrice: money.FromFloat(39.99),
			Rating:        4.3,
			Reviews:       89,
			Image:         "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=300&h=300&fit=crop",
			Description:   "Comfortable cotton t-shirt with modern design",
			InStock:       true,
			Badge:         "Popular",
		},
		{
			ID:            7,
			Name:          "Denim Jacket",
			Category:      "fashion",
			Price:         money.FromFloat(79.99),
			OriginalPrice: money.FromFloat(99.99),
			Rating:        4.4,
			Reviews:       145,
			Image:         "https://images.unsplash.com/photo-1544022613-e87ca75a784a?w=300&h=300&fit=crop",
			Description:   "Classic denim jacket for any occasion",
			InStock:       true,
			Badge:         "Trending",
		},
		{
			ID:            13,
			Name:          "Elegant Evening Dress",
			Category:      "fashion",
			Price:         money.FromFloat(149.99),
			OriginalPrice: money.FromFloat(199.99),
			Rating:        4.8,
			Reviews:       67,
			Image:         "https://images.unsplash.com/photo-1595777457583-95e059d581b8?w=300&h=300&fit=crop",
			Description:   "Stunning evening dress perfect for special occasions",
			InStock:       true,
			Badge:         "New",
		},
		{
			ID:            14,
			Name:          "Casual Sneakers",
			Category:      "fashion",
			Price:         money.FromFloat(89.99),
			OriginalPrice: money.FromFloat(119.99),
			Rating:        4.5,
			Reviews:       234,
			Image:         "https://images.unsplash.com/photo-1549298916-b41d501d3772?w=300&h=300&fit=crop",
			Description:   "Comfortable casual sneakers for everyday wear",
			InStock:       true,
			Badge:         "Sale",
		},
		{
			ID:            15,
			Name:          "Leather Handbag",
			Category:      "fashion",
			Price:         money.FromFloat(199.99),
			OriginalPrice: money.FromFloat(249.99),
			Rating:        4.6,
			Reviews:       98,
			Image:         "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=300&h=300&fit=crop",
			Description:   "Premium leather handbag with multiple compartments",
			InStock:       true,
			Badge:         "Luxury",
		},
		{
			ID:            16,
			Name:          "Wool Winter Coat",
			Category:      "fashion",
			Price:         money.FromFloat(179.99),
			OriginalPrice: money.FromFloat(229.99),
			Rating:        4.7,
			Reviews:       112,
			Image:         "https://images.unsplash.com/photo-1551698618-1dfe5d97d256?w=300&h=300&fit=crop",
			Description:   "Warm wool coat perfect for winter weather",
			InStock:       true,
			Badge:         "Seasonal",
		},
		{
			ID:            17,
			Name:          "Designer Sunglasses",
			Category:      "fashion",
			Price:         money.FromFloat(129.99),
			OriginalPrice: money.FromFloat(159.99),
			Rating:        4.4,
			Reviews:       78,
			Image:         "https://images.unsplash.com/photo-1511499767150-a48a237f0083?w=300&h=300&fit=crop",
			Description:   "Stylish designer sunglasses with UV protection",
			InStock:       true,
			Badge:         "Trending",
		},
		{
			ID:            4,
			Name:          "Running Shoes",
			Category:      "sports",
			Price:         money.FromFloat(129.99),
			OriginalPrice: money.FromFloat(159.99),
			Rating:        4.6,
			Reviews:       167,
			Image:         "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=300&h=300&fit=crop",
			Description:   "Professional running shoes with superior comfort",
			InStock:       true,
			Badge:         "Sale",
		},
		{
			ID:            8,
			Name:          "Yoga Mat",
			Category:      "sports",
			Price:         money.FromFloat(39.99),
			OriginalPrice: money.FromFloat(49.99),
			Rating:        4.5,
			Reviews:       78,
			Image:         "https://images.unsplash.com/photo-1544367567-0f2fcb009e0b?w=300&h=300&fit=crop",
			Description:   "Premium yoga mat with excellent grip and comfort",
			InStock:       true,
			Badge:         "Eco-Friendly",
		},
		{
			ID:            18,
			Name:          "Fitness Tracker",
			Category:      "sports",
			Price:         money.FromFloat(89.99),
			OriginalPrice: money.FromFloat(119.99),
			Rating:        4.5,
			Reviews:       145,
			Image:         "https://images.unsplash.com/photo-1576243345690-4e4b79b63288?w=300&h=300&fit=crop",
			Description:   "Advanced fitness tracker with heart rate monitoring",
			InStock:       true,
			Badge:         "Popular",
		},
		{
			ID:            19,
			Name:          "Basketball",
			Category:      "sports",
			Price:         money.FromFloat(24.99),
			OriginalPrice: money.FromFloat(34.99),
			Rating:        4.3,
			Reviews:       56,
			Image:         "https://images.unsplash.com/photo-1546519638-68e109498ffc?w=300&h=300&fit=crop",
			Description:   "Professional basketball with excellent grip",
			InStock:       true,
			Badge:         "Sale",
		},
		{
			ID:            20,
			Name:          "Resistance Bands Set",
			Category:      "sports",
			Price:         money.FromFloat(19.99),
			OriginalPrice: money.FromFloat(29.99),
			Rating:        4.4,
			Reviews:       89,
			Image:         "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=300&h=300&fit=crop",
			Description:   "Complete set of resistance bands for home workouts",
			InStock:       true,
			Badge:         "Bundle",
		},
		{
			ID:            21,
			Name:          "Tennis Racket",
			Category:      "sports",
			Price:         money.FromFloat(159.99),
			OriginalPrice: money.FromFloat(199.99),
			Rating:        4.6,
			Reviews:       73,
			Image:         "https://images.unsplash.com/photo-1551698618-1dfe5d97d256?w=300&h=300&fit=crop",
			Description:   "Professional tennis racket for advanced players",
			InStock:       true,
			Badge:         "Pro",
		},
		{
			ID:            22,
			Name:          "Cycling Helmet",
			Category:      "sports",
			Price:         money.FromFloat(59.99),
			OriginalPrice: money.FromFloat(79.99),
			Rating:        4.7,
			Reviews:       124,
			Image:         "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=300&h=300&fit=crop",
			Description:   "Safety cycling helmet with ventilation system",
			InStock:       true,
			Badge:         "Safety",
		},
		{
			ID:            5,
			Name:          "Modern Coffee Table",
			Category:      "home",
			Price:         money.FromFloat(299.99),
			OriginalPrice: money.FromFloat(399.99),
			Rating:        4.7,
			Reviews:       94,
			Image:         "https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=300&h=300&fit=crop",
			Description:   "Elegant coffee table perfect for modern living rooms",
			InStock:       true,
			Badge:         "Featured",
		},
		{
			ID:            23,
			Name:          "Smart Home Speaker",
			Category:      "home",
			Price:         money.FromFloat(79.99),
			OriginalPrice: money.FromFloat(99.99),
			Rating:        4.5,
			Reviews:       167,
			Image:         "https://images.unsplash.com/photo-1543512214-318c7553f230?w=300&h=300&fit=crop",
			Description:   "Voice-controlled smart speaker with built-in assistant",
			InStock:       true,
			Badge:         "Smart",
		},
		{
			ID:            24,
			Name:          "LED Desk Lamp",
			Category:      "home",
			Price:         money.FromFloat(49.99),
			OriginalPrice: money.FromFloat(69.99),
			Rating:        4.4,
			Reviews:       98,
			Image:         "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=300&h=300&fit=crop",
			Description:   "Adjustable LED desk lamp with touch control",
			InStock:       true,
			Badge:         "Modern",
		},
		{
			ID:            25,
			Name:          "Memory Foam Pillow",
			Category:      "home",
			Price:         money.FromFloat(39.99),
			OriginalPrice: money.FromFloat(59.99),
			Rating:        4.6,
			Reviews:       234,
			Image:         "https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=300&h=300&fit=crop",
			Description:   "Premium memory foam pillow for better sleep",
			InStock:       true,
			Badge:         "Comfort",
		},
		{
			ID:            26,
			Name:          "Decorative Wall Art",
			Category:      "home",
			Price:         money.FromFloat(89.99),
			OriginalPrice: money.FromFloat(119.99),
			Rating:        4.3,
			Reviews:       67,
			Image:         "https://images.unsplash.com/photo-1565299624946-b28f40a0ca4b?w=300&h=300&fit=crop",
			Description:   "Beautiful canvas wall art for home decoration",
			InStock:       true,
			Badge:         "Art",
		},
		{
			ID:            27,
			Name:          "Kitchen Knife Set",
			Category:      "home",
			Price:         money.FromFloat(129.99),
			OriginalPrice: money.FromFloat(169.99),
			Rating:        4.8,
			Reviews:       156,
			Image:         "https://images.unsplash.com/photo-1556909114-f6e7ad7d3136?w=300&h=300&fit=crop",
			Description:   "Professional stainless steel knife set for cooking",
			InStock:       true,
			Badge:         "Chef's Choice",
		},
		{
			ID:            28,
			Name:          "Robot Vacuum Cleaner",
			Category:      "home",
			Price:         money.FromFloat(249.99),
			OriginalPrice: money.FromFloat(329.99),
			Rating:        4.5,
			Reviews:       189,
			Image:         "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=300&h=300&fit=crop",
			Description:   "Smart robot vacuum with app control and scheduling",
			InStock:       true,
			Badge:         "Smart Home",
		},
	}
}
