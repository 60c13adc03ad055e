package sqldb

// sqliteSchema esquema relacional de los siete registros. created_at se guarda como
// texto RFC 3339 con nanosegundos.
var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS products (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		sku TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		price REAL NOT NULL CHECK (price >= 0),
		description TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS warehouses (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		location TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS inventory (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		product_id INTEGER NOT NULL REFERENCES products(id),
		warehouse_id INTEGER NOT NULL REFERENCES warehouses(id),
		quantity INTEGER NOT NULL DEFAULT 0 CHECK (quantity >= 0),
		updated_at TEXT NOT NULL,
		UNIQUE (product_id, warehouse_id)
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		order_number TEXT NOT NULL UNIQUE,
		status TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		order_id INTEGER NOT NULL REFERENCES orders(id),
		product_id INTEGER NOT NULL REFERENCES products(id),
		quantity INTEGER NOT NULL CHECK (quantity >= 0),
		price REAL NOT NULL,
		created_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS shipments (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		order_id INTEGER NOT NULL REFERENCES orders(id),
		tracking_number TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS payments (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		order_id INTEGER NOT NULL REFERENCES orders(id),
		amount REAL NOT NULL,
		method TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id)`,
	`CREATE INDEX IF NOT EXISTS idx_shipments_order ON shipments(order_id)`,
	`CREATE INDEX IF NOT EXISTS idx_payments_order ON payments(order_id)`,
}

// mysqlSchema mismo modelo para InnoDB. Los índices de las llaves foráneas los crea InnoDB.
var mysqlSchema = []string{
	`CREATE TABLE IF NOT EXISTS products (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		sku VARCHAR(191) NOT NULL UNIQUE,
		name VARCHAR(255) NOT NULL,
		price DOUBLE NOT NULL CHECK (price >= 0),
		description TEXT NOT NULL,
		created_at VARCHAR(40) NOT NULL
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS warehouses (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		location VARCHAR(255) NOT NULL DEFAULT '',
		created_at VARCHAR(40) NOT NULL
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS inventory (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		product_id BIGINT NOT NULL,
		warehouse_id BIGINT NOT NULL,
		quantity BIGINT NOT NULL DEFAULT 0 CHECK (quantity >= 0),
		updated_at VARCHAR(40) NOT NULL,
		UNIQUE KEY uq_inventory_product_warehouse (product_id, warehouse_id),
		FOREIGN KEY (product_id) REFERENCES products(id),
		FOREIGN KEY (warehouse_id) REFERENCES warehouses(id)
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS orders (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		order_number VARCHAR(191) NOT NULL UNIQUE,
		status VARCHAR(64) NOT NULL,
		created_at VARCHAR(40) NOT NULL
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS order_items (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		order_id BIGINT NOT NULL,
		product_id BIGINT NOT NULL,
		quantity BIGINT NOT NULL CHECK (quantity >= 0),
		price DOUBLE NOT NULL,
		created_at VARCHAR(40) NOT NULL,
		FOREIGN KEY (order_id) REFERENCES orders(id),
		FOREIGN KEY (product_id) REFERENCES products(id)
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS shipments (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		order_id BIGINT NOT NULL,
		tracking_number VARCHAR(191) NOT NULL DEFAULT '',
		status VARCHAR(64) NOT NULL DEFAULT '',
		created_at VARCHAR(40) NOT NULL,
		FOREIGN KEY (order_id) REFERENCES orders(id)
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS payments (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		order_id BIGINT NOT NULL,
		amount DOUBLE NOT NULL,
		method VARCHAR(64) NOT NULL DEFAULT '',
		status VARCHAR(64) NOT NULL DEFAULT '',
		created_at VARCHAR(40) NOT NULL,
		FOREIGN KEY (order_id) REFERENCES orders(id)
	) ENGINE=InnoDB`,
}
